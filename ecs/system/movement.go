package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollcore/ecs/component"
)

// Animation clip names the controller selects.
const (
	AnimStand = "stand"
	AnimWalk  = "walk"
	AnimJump  = "jump"
	AnimDuck  = "duck"
)

// Tuning holds the movement constants.
type Tuning struct {
	JumpVelocity float64
	WalkSpeed    float64
	ClimbSpeed   float64
	Gravity      float64
}

func DefaultTuning() Tuning {
	return Tuning{
		JumpVelocity: 100,
		WalkSpeed:    20,
		ClimbSpeed:   20,
		Gravity:      -200,
	}
}

// Actions is the held state of every bound action at evaluation time.
type Actions struct {
	Jump  bool
	Climb bool
	Duck  bool
	Left  bool
	Right bool
	// NearClimbable is true while the entity overlaps a climbable collider.
	NearClimbable bool
}

// MotionSnapshot is the part of an entity the controller reads and writes.
type MotionSnapshot struct {
	Motion   component.Motion
	Velocity cp.Vector
}

type EffectKind int

const (
	EffectPlayAnimation EffectKind = iota
	EffectJumped
	EffectStartedClimbing
	EffectStoppedClimbing
)

// Effect is a side effect the caller applies after a transition.
type Effect struct {
	Kind      EffectKind
	Animation string
}

// Transition advances both motion axes for one evaluation. It is pure: the
// polling and event adapters both call it, so equal state and equal held
// actions always produce equal results.
func Transition(s MotionSnapshot, in Actions, tun Tuning, ctrl component.Controller) (MotionSnapshot, []Effect) {
	if s.Motion.Dead() {
		return s, nil
	}
	var effects []Effect
	m := &s.Motion

	if m.Secondary == component.SecondaryIdle && in.Jump {
		m.Secondary = component.SecondaryJumping
		s.Velocity.Y = tun.JumpVelocity
		effects = append(effects, Effect{Kind: EffectJumped})
	}

	switch {
	case m.Secondary == component.SecondaryClimbing && !in.NearClimbable:
		m.Secondary = component.SecondaryFalling
		effects = append(effects, Effect{Kind: EffectStoppedClimbing})
	case m.Secondary != component.SecondaryClimbing && in.NearClimbable && in.Climb:
		m.Secondary = component.SecondaryClimbing
		s.Velocity.Y = 0
		effects = append(effects, Effect{Kind: EffectStartedClimbing}, Effect{Kind: EffectPlayAnimation, Animation: AnimJump})
	}

	primary := m.Primary

	if m.Secondary == component.SecondaryClimbing {
		switch {
		case in.Climb:
			s.Velocity.Y = tun.ClimbSpeed
		case in.Duck:
			s.Velocity.Y = -tun.ClimbSpeed
		default:
			s.Velocity.Y = 0
		}
	} else if !m.Ducking && in.Duck {
		m.Ducking = true
		if !ctrl.SkipDuckAnimation {
			effects = append(effects, Effect{Kind: EffectPlayAnimation, Animation: AnimDuck})
		}
	} else if m.Ducking && !in.Duck {
		m.Ducking = false
		if anim := standingAnimation(*m); anim != "" && !ctrl.SkipDuckAnimation {
			effects = append(effects, Effect{Kind: EffectPlayAnimation, Animation: anim})
		}
	}

	switch primary {
	case component.PrimaryIdle:
		if in.Left {
			m.Primary = component.PrimaryWalkingLeft
			s.Velocity.X = -tun.WalkSpeed
		} else if in.Right {
			m.Primary = component.PrimaryWalkingRight
			s.Velocity.X = tun.WalkSpeed
		}
	case component.PrimaryWalkingRight:
		if !in.Right {
			if in.Left {
				m.Primary = component.PrimaryWalkingLeft
				s.Velocity.X = -tun.WalkSpeed
			} else {
				m.Primary = component.PrimaryIdle
				s.Velocity.X = 0
			}
		}
	case component.PrimaryWalkingLeft:
		if !in.Left {
			if in.Right {
				m.Primary = component.PrimaryWalkingRight
				s.Velocity.X = tun.WalkSpeed
			} else {
				m.Primary = component.PrimaryIdle
				s.Velocity.X = 0
			}
		}
	}

	return s, effects
}

// standingAnimation picks the clip to return to after ducking.
func standingAnimation(m component.Motion) string {
	switch m.Primary {
	case component.PrimaryWalkingLeft, component.PrimaryWalkingRight:
		return AnimWalk
	case component.PrimaryIdle:
		if m.Secondary.Airborne() {
			return AnimJump
		}
		return AnimStand
	}
	return ""
}
