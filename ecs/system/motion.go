package system

import (
	"github.com/milk9111/scrollcore/common"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
)

// MotionSystem integrates velocity into position once per tick and applies
// gravity to everything that is not climbing. Grounded entities sink a little
// each tick and are pushed back out by the collision pass, which keeps their
// ground pair registered.
type MotionSystem struct {
	Tuning *Tuning
}

func NewMotionSystem(tuning *Tuning) *MotionSystem {
	return &MotionSystem{Tuning: tuning}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	gravity := DefaultTuning().Gravity
	if s.Tuning != nil {
		gravity = s.Tuning.Gravity
	}
	dt := 1.0 / float64(common.TicksPerSecond)

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.MotionComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, v *component.Velocity, m *component.Motion) {
			if inactive(w, e) {
				return
			}
			if m.Secondary != component.SecondaryClimbing {
				scale := 1.0
				if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
					scale = g.Scale
				}
				v.Y += gravity * scale * dt
			}
			if m.Secondary == component.SecondaryJumping && v.Y < 0 {
				m.Secondary = component.SecondaryFalling
			}
			t.X += v.X * dt
			t.Y += v.Y * dt
		})
}

// CleanupSystem destroys entities flagged for deletion and drops their
// registry pairs so a reused slot never inherits a stale overlap. Dead
// entities stay in the world but lose their pairs; no exit hooks fire.
type CleanupSystem struct {
	Registry *CollisionRegistry
}

func NewCleanupSystem(registry *CollisionRegistry) *CleanupSystem {
	return &CleanupSystem{Registry: registry}
}

func (s *CleanupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var doomed []ecs.Entity
	ecs.ForEach(w, component.LifecycleComponent.Kind(), func(e ecs.Entity, l *component.Lifecycle) {
		if l.PendingDeletion {
			doomed = append(doomed, e)
		}
	})
	for _, e := range doomed {
		if s.Registry != nil {
			s.Registry.Forget(e)
		}
		ecs.DestroyEntity(w, e)
	}

	if s.Registry == nil || s.Registry.Len() == 0 {
		return
	}
	ecs.ForEach(w, component.MotionComponent.Kind(), func(e ecs.Entity, m *component.Motion) {
		if m.Dead() {
			s.Registry.Forget(e)
		}
	})
}
