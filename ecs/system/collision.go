package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollcore/common"
	"github.com/milk9111/scrollcore/ecs"
	"github.com/milk9111/scrollcore/ecs/component"
)

// Axis selects which component of the penetration depth is applied.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// CollisionHook is called on one participant of a pair. self is the entity
// owning the hook.
type CollisionHook func(w *ecs.World, self, other ecs.Entity, depth cp.Vector)

// CollisionHandler holds native enter/exit hooks for an entity.
type CollisionHandler struct {
	OnEnter CollisionHook
	OnExit  CollisionHook
}

var CollisionHandlerComponent = component.NewComponent[CollisionHandler]()

// CollisionSystem resolves box overlaps between dynamic entities and
// colliders and dispatches enter/exit notifications on registry transitions.
type CollisionSystem struct {
	Registry *CollisionRegistry
	Scripts  *ScriptHooks

	malformed map[ecs.Entity]bool
}

func NewCollisionSystem(registry *CollisionRegistry, scripts *ScriptHooks) *CollisionSystem {
	if registry == nil {
		registry = NewCollisionRegistry()
	}
	return &CollisionSystem{Registry: registry, Scripts: scripts}
}

// Resolve tests subject against collider with offset applied to the subject
// box (and its negation to the collider box), fires enter/exit hooks and
// pushes the subject out along axis. It reports whether the boxes overlap.
func (s *CollisionSystem) Resolve(w *ecs.World, subject, collider ecs.Entity, axis Axis, offset cp.Vector) bool {
	_, ok, _ := s.resolve(w, subject, collider, axis, offset)
	return ok
}

// Trigger is Resolve without position correction.
func (s *CollisionSystem) Trigger(w *ecs.World, subject, collider ecs.Entity, offset cp.Vector) bool {
	_, ok := s.contact(w, subject, collider, offset)
	return ok
}

// resolve also reports whether a position correction was applied.
func (s *CollisionSystem) resolve(w *ecs.World, subject, collider ecs.Entity, axis Axis, offset cp.Vector) (cp.Vector, bool, bool) {
	depth, ok := s.contact(w, subject, collider, offset)
	if !ok {
		return depth, false, false
	}

	if canClimb(w, subject) && ecs.Has(w, collider, component.ClimbableComponent.Kind()) {
		return depth, true, false
	}

	t, ok := ecs.Get(w, subject, component.TransformComponent.Kind())
	if !ok {
		return depth, true, false
	}
	if axis == AxisX {
		t.X += depth.X
		return depth, true, true
	}

	if m, ok := ecs.Get(w, subject, component.MotionComponent.Kind()); ok {
		if depth.Y < 0 {
			m.Secondary = component.SecondaryFalling
		} else {
			m.Secondary = component.SecondaryIdle
		}
	}
	if v, ok := ecs.Get(w, subject, component.VelocityComponent.Kind()); ok {
		v.Y = 0
	}
	t.Y += depth.Y
	return depth, true, true
}

// contact runs the guard, the overlap test and the registry transition.
func (s *CollisionSystem) contact(w *ecs.World, subject, collider ecs.Entity, offset cp.Vector) (cp.Vector, bool) {
	if inactive(w, subject) || inactive(w, collider) {
		return cp.Vector{}, false
	}
	if s.Registry == nil {
		s.Registry = NewCollisionRegistry()
	}
	a, b, ok := s.boxes(w, subject, collider, offset)
	if !ok {
		return cp.Vector{}, false
	}

	depth := common.Overlap(a, b)
	if common.IsZero(depth) {
		if s.Registry.Remove(subject, collider) {
			s.notify(w, ecs.CollisionEventExit, collider, subject, depth)
			s.notify(w, ecs.CollisionEventExit, subject, collider, depth)
			w.Events().Push(ecs.Event{Type: ecs.EventTypeCollision, Data: ecs.CollisionEvent{
				Kind: ecs.CollisionEventExit, Subject: subject, Collider: collider, Depth: depth,
			}})
		}
		return depth, false
	}

	if s.Registry.Add(subject, collider) {
		s.notify(w, ecs.CollisionEventEnter, collider, subject, depth)
		s.notify(w, ecs.CollisionEventEnter, subject, collider, depth)
		w.Events().Push(ecs.Event{Type: ecs.EventTypeCollision, Data: ecs.CollisionEvent{
			Kind: ecs.CollisionEventEnter, Subject: subject, Collider: collider, Depth: depth,
		}})
	}
	return depth, true
}

// boxes builds both boxes from live components. The player flavor keeps its
// own box fixed and only shifts the collider.
func (s *CollisionSystem) boxes(w *ecs.World, subject, collider ecs.Entity, offset cp.Vector) (common.Rect, common.Rect, bool) {
	a, ok := s.box(w, subject)
	if !ok {
		return common.Rect{}, common.Rect{}, false
	}
	b, ok := s.box(w, collider)
	if !ok {
		return common.Rect{}, common.Rect{}, false
	}
	if ctrl, ok := ecs.Get(w, subject, component.ControllerComponent.Kind()); !ok || !ctrl.FixedSubjectBox {
		a = a.Translate(offset)
	}
	b = b.Translate(offset.Neg())
	return a, b, true
}

func (s *CollisionSystem) box(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	size, ok := ecs.Get(w, e, component.BoxComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	r := common.NewRect(t.Position(), size.Width, size.Height)
	if err := r.Validate(); err != nil {
		if s.malformed == nil {
			s.malformed = make(map[ecs.Entity]bool)
		}
		if !s.malformed[e] {
			s.malformed[e] = true
			log.Printf("collision: entity=%s rejected: %v", e, err)
		}
		return common.Rect{}, false
	}
	return r, true
}

func (s *CollisionSystem) notify(w *ecs.World, kind ecs.CollisionEventKind, self, other ecs.Entity, depth cp.Vector) {
	if h, ok := ecs.Get(w, self, CollisionHandlerComponent.Kind()); ok {
		hook := h.OnEnter
		if kind == ecs.CollisionEventExit {
			hook = h.OnExit
		}
		if hook != nil {
			hook(w, self, other, depth)
		}
	}
	if s.Scripts == nil {
		return
	}
	if sc, ok := ecs.Get(w, self, component.CollisionScriptComponent.Kind()); ok {
		if err := s.Scripts.Run(w, sc, kind, self, other, depth); err != nil {
			log.Printf("collision: entity=%s script %q %s error: %v", self, sc.Path, kind, err)
		}
	}
}

// Update runs one resolution pass. Every dynamic entity is tested against
// every collider in slot order; solid colliders are resolved along the axis
// of least penetration, trigger colliders only report enter/exit. An idle
// subject that ends the pass without ground support starts falling.
func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	subjects := ecs.Query(w,
		component.TransformComponent.Kind().ID(),
		component.BoxComponent.Kind().ID(),
		component.VelocityComponent.Kind().ID(),
		component.MotionComponent.Kind().ID(),
	)
	colliders := ecs.Query(w,
		component.TransformComponent.Kind().ID(),
		component.BoxComponent.Kind().ID(),
		component.ColliderComponent.Kind().ID(),
	)

	for _, sub := range subjects {
		if inactive(w, sub) {
			continue
		}
		supported := false
		for _, col := range colliders {
			if col == sub {
				continue
			}
			c, _ := ecs.Get(w, col, component.ColliderComponent.Kind())
			if c.Trigger {
				s.Trigger(w, sub, col, cp.Vector{})
				continue
			}
			axis := s.leastPenetrationAxis(w, sub, col)
			depth, ok, corrected := s.resolve(w, sub, col, axis, cp.Vector{})
			if ok && corrected && axis == AxisY && depth.Y > 0 {
				supported = true
			}
		}
		m, ok := ecs.Get(w, sub, component.MotionComponent.Kind())
		if ok && !supported && !m.Dead() && m.Secondary == component.SecondaryIdle {
			m.Secondary = component.SecondaryFalling
		}
	}
}

func (s *CollisionSystem) leastPenetrationAxis(w *ecs.World, subject, collider ecs.Entity) Axis {
	a, b, ok := s.boxes(w, subject, collider, cp.Vector{})
	if !ok {
		return AxisY
	}
	depth := common.Overlap(a, b)
	if common.Abs(depth.X) < common.Abs(depth.Y) {
		return AxisX
	}
	return AxisY
}

// inactive covers invalid handles, pending deletion and the dead state.
func inactive(w *ecs.World, e ecs.Entity) bool {
	if !ecs.IsAlive(w, e) {
		return true
	}
	if l, ok := ecs.Get(w, e, component.LifecycleComponent.Kind()); ok && l.PendingDeletion {
		return true
	}
	if m, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok && m.Dead() {
		return true
	}
	return false
}

func canClimb(w *ecs.World, e ecs.Entity) bool {
	c, ok := ecs.Get(w, e, component.ClimberComponent.Kind())
	return ok && c.CanClimb
}
