package system

import (
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
	"github.com/milk9111/scrollcore/input"
)

// MovementController maps held keys to actions through the binding table and
// applies Transition to entities.
type MovementController struct {
	Bindings *input.Bindings
	Registry *CollisionRegistry
	Tuning   *Tuning
}

func NewMovementController(bindings *input.Bindings, registry *CollisionRegistry, tuning *Tuning) *MovementController {
	if tuning == nil {
		t := DefaultTuning()
		tuning = &t
	}
	return &MovementController{Bindings: bindings, Registry: registry, Tuning: tuning}
}

// UpdatePlayerInput evaluates e against the live tracker state.
func (c *MovementController) UpdatePlayerInput(w *ecs.World, e ecs.Entity, tracker *input.Tracker) {
	if c == nil || tracker == nil {
		return
	}
	c.apply(w, e, tracker.Key)
}

// ApplyInputEvent feeds a single key event to e. The event updates the
// entity's held keys, so a release is evaluated against everything still
// held, exactly as the polling path sees it.
func (c *MovementController) ApplyInputEvent(w *ecs.World, e ecs.Entity, code int, pressed bool) {
	if c == nil || !ecs.IsAlive(w, e) {
		return
	}
	held, ok := ecs.Get(w, e, component.HeldKeysComponent.Kind())
	if !ok {
		held = &component.HeldKeys{}
		if err := ecs.Add(w, e, component.HeldKeysComponent.Kind(), held); err != nil {
			return
		}
	}
	held.Set(code, pressed)
	c.apply(w, e, held.Down)
}

// UpdateHeld re-evaluates an event-driven entity against its held keys.
func (c *MovementController) UpdateHeld(w *ecs.World, e ecs.Entity) {
	if c == nil {
		return
	}
	held, ok := ecs.Get(w, e, component.HeldKeysComponent.Kind())
	if !ok {
		return
	}
	c.apply(w, e, held.Down)
}

func (c *MovementController) actions(w *ecs.World, e ecs.Entity, down func(code int) bool) Actions {
	bound := func(name string) bool {
		if c.Bindings == nil {
			return false
		}
		return down(c.Bindings.Lookup(name))
	}
	return Actions{
		Jump:          bound(input.BindJump),
		Climb:         bound(input.BindClimb),
		Duck:          bound(input.BindDuck),
		Left:          bound(input.BindMoveLeft),
		Right:         bound(input.BindMoveRight),
		NearClimbable: c.nearClimbable(w, e),
	}
}

func (c *MovementController) nearClimbable(w *ecs.World, e ecs.Entity) bool {
	if c.Registry == nil {
		return false
	}
	for _, col := range c.Registry.CollidersOf(e) {
		if ecs.Has(w, col, component.ClimbableComponent.Kind()) {
			return true
		}
	}
	return false
}

func (c *MovementController) apply(w *ecs.World, e ecs.Entity, down func(code int) bool) {
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok || m.Dead() {
		return
	}
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	var ctrl component.Controller
	if cc, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
		ctrl = *cc
	}
	tuning := DefaultTuning()
	if c.Tuning != nil {
		tuning = *c.Tuning
	}

	before := *m
	next, effects := Transition(MotionSnapshot{Motion: *m, Velocity: v.Vector()}, c.actions(w, e, down), tuning, ctrl)
	*m = next.Motion
	v.X = next.Velocity.X
	v.Y = next.Velocity.Y

	var anim string
	for _, eff := range effects {
		if eff.Kind == EffectPlayAnimation {
			PlayAnimation(w, e, eff.Animation)
			anim = eff.Animation
		}
	}
	if before != *m || anim != "" {
		w.Events().Push(ecs.Event{Type: ecs.EventTypeMovement, Data: ecs.MovementEvent{
			Entity:    e,
			Primary:   m.Primary.String(),
			Secondary: m.Secondary.String(),
			Animation: anim,
		}})
	}
}

// PlayerControllerSystem runs the controller once per tick. Entities holding
// HeldKeys are driven by injected events and re-evaluated against their held
// keys; player entities without HeldKeys poll the live tracker.
type PlayerControllerSystem struct {
	Input      *input.Tracker
	Controller *MovementController
}

func NewPlayerControllerSystem(tracker *input.Tracker, controller *MovementController) *PlayerControllerSystem {
	return &PlayerControllerSystem{Input: tracker, Controller: controller}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil || p.Controller == nil {
		return
	}
	if p.Input != nil {
		ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
			if ecs.Has(w, e, component.HeldKeysComponent.Kind()) {
				return
			}
			p.Controller.UpdatePlayerInput(w, e, p.Input)
		})
	}
	ecs.ForEach(w, component.HeldKeysComponent.Kind(), func(e ecs.Entity, _ *component.HeldKeys) {
		p.Controller.UpdateHeld(w, e)
	})
}
