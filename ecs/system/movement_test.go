package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollcore/ecs/component"
)

func TestTransition(t *testing.T) {
	tun := DefaultTuning()
	idle := component.Motion{}
	walkingRight := component.Motion{Primary: component.PrimaryWalkingRight}
	walkingLeft := component.Motion{Primary: component.PrimaryWalkingLeft}
	climbing := component.Motion{Secondary: component.SecondaryClimbing}

	cases := []struct {
		name     string
		start    MotionSnapshot
		in       Actions
		ctrl     component.Controller
		want     MotionSnapshot
		wantAnim string
	}{
		{
			name:  "idle_left_walks_left",
			start: MotionSnapshot{Motion: idle},
			in:    Actions{Left: true},
			want:  MotionSnapshot{Motion: walkingLeft, Velocity: cp.Vector{X: -20}},
		},
		{
			name:  "idle_right_walks_right",
			start: MotionSnapshot{Motion: idle},
			in:    Actions{Right: true},
			want:  MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
		},
		{
			name:  "left_wins_simultaneous_press",
			start: MotionSnapshot{Motion: idle},
			in:    Actions{Left: true, Right: true},
			want:  MotionSnapshot{Motion: walkingLeft, Velocity: cp.Vector{X: -20}},
		},
		{
			name:  "right_release_with_left_held",
			start: MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
			in:    Actions{Left: true},
			want:  MotionSnapshot{Motion: walkingLeft, Velocity: cp.Vector{X: -20}},
		},
		{
			name:  "right_release_alone_stops",
			start: MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
			in:    Actions{},
			want:  MotionSnapshot{Motion: idle},
		},
		{
			name:  "right_held_keeps_walking",
			start: MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
			in:    Actions{Right: true, Left: true},
			want:  MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
		},
		{
			name:  "left_release_with_right_held",
			start: MotionSnapshot{Motion: walkingLeft, Velocity: cp.Vector{X: -20}},
			in:    Actions{Right: true},
			want:  MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
		},
		{
			name:  "jump_from_idle",
			start: MotionSnapshot{Motion: idle},
			in:    Actions{Jump: true},
			want: MotionSnapshot{
				Motion:   component.Motion{Secondary: component.SecondaryJumping},
				Velocity: cp.Vector{Y: 100},
			},
		},
		{
			name:  "no_jump_while_falling",
			start: MotionSnapshot{Motion: component.Motion{Secondary: component.SecondaryFalling}, Velocity: cp.Vector{Y: -5}},
			in:    Actions{Jump: true},
			want:  MotionSnapshot{Motion: component.Motion{Secondary: component.SecondaryFalling}, Velocity: cp.Vector{Y: -5}},
		},
		{
			name:  "climb_up",
			start: MotionSnapshot{Motion: climbing},
			in:    Actions{Climb: true, Duck: true, NearClimbable: true},
			want:  MotionSnapshot{Motion: climbing, Velocity: cp.Vector{Y: 20}},
		},
		{
			name:  "climb_down",
			start: MotionSnapshot{Motion: climbing},
			in:    Actions{Duck: true, NearClimbable: true},
			want:  MotionSnapshot{Motion: climbing, Velocity: cp.Vector{Y: -20}},
		},
		{
			name:  "climb_hold",
			start: MotionSnapshot{Motion: climbing, Velocity: cp.Vector{Y: 20}},
			in:    Actions{NearClimbable: true},
			want:  MotionSnapshot{Motion: climbing},
		},
		{
			name:  "leaving_ladder_falls",
			start: MotionSnapshot{Motion: climbing},
			in:    Actions{Climb: true},
			want:  MotionSnapshot{Motion: component.Motion{Secondary: component.SecondaryFalling}},
		},
		{
			name:     "grab_ladder",
			start:    MotionSnapshot{Motion: component.Motion{Secondary: component.SecondaryFalling}, Velocity: cp.Vector{Y: -30}},
			in:       Actions{Climb: true, NearClimbable: true},
			want:     MotionSnapshot{Motion: climbing, Velocity: cp.Vector{Y: 20}},
			wantAnim: AnimJump,
		},
		{
			name:     "duck_enter",
			start:    MotionSnapshot{Motion: idle},
			in:       Actions{Duck: true},
			want:     MotionSnapshot{Motion: component.Motion{Ducking: true}},
			wantAnim: AnimDuck,
		},
		{
			name:  "duck_enter_without_animation",
			start: MotionSnapshot{Motion: idle},
			in:    Actions{Duck: true},
			ctrl:  component.Controller{SkipDuckAnimation: true},
			want:  MotionSnapshot{Motion: component.Motion{Ducking: true}},
		},
		{
			name:     "duck_leave_standing",
			start:    MotionSnapshot{Motion: component.Motion{Ducking: true}},
			in:       Actions{},
			want:     MotionSnapshot{Motion: idle},
			wantAnim: AnimStand,
		},
		{
			name:     "duck_leave_walking",
			start:    MotionSnapshot{Motion: component.Motion{Primary: component.PrimaryWalkingRight, Ducking: true}, Velocity: cp.Vector{X: 20}},
			in:       Actions{Right: true},
			want:     MotionSnapshot{Motion: walkingRight, Velocity: cp.Vector{X: 20}},
			wantAnim: AnimWalk,
		},
		{
			name:     "duck_leave_airborne",
			start:    MotionSnapshot{Motion: component.Motion{Secondary: component.SecondaryFalling, Ducking: true}},
			in:       Actions{},
			want:     MotionSnapshot{Motion: component.Motion{Secondary: component.SecondaryFalling}},
			wantAnim: AnimJump,
		},
		{
			name:  "dead_ignores_input",
			start: MotionSnapshot{Motion: component.Motion{Primary: component.PrimaryDead}},
			in:    Actions{Left: true, Jump: true, Duck: true},
			want:  MotionSnapshot{Motion: component.Motion{Primary: component.PrimaryDead}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, effects := Transition(c.start, c.in, tun, c.ctrl)
			if got != c.want {
				t.Fatalf("Transition = %+v, want %+v", got, c.want)
			}
			var anim string
			for _, eff := range effects {
				if eff.Kind == EffectPlayAnimation {
					anim = eff.Animation
				}
			}
			if anim != c.wantAnim {
				t.Fatalf("animation = %q, want %q", anim, c.wantAnim)
			}
		})
	}
}

func TestTransitionUsesTuning(t *testing.T) {
	tun := Tuning{JumpVelocity: 7, WalkSpeed: 3, ClimbSpeed: 1}
	got, effects := Transition(MotionSnapshot{}, Actions{Jump: true, Right: true}, tun, component.Controller{})
	if got.Velocity != (cp.Vector{X: 3, Y: 7}) {
		t.Fatalf("velocity = %v, want (3, 7)", got.Velocity)
	}
	if len(effects) != 1 || effects[0].Kind != EffectJumped {
		t.Fatalf("expected a single jump effect, got %v", effects)
	}
}
