package ecs

import "github.com/jakecoffman/cp"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventTypeCollision = "collision"
	EventTypeMovement  = "movement"
)

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventEnter CollisionEventKind = "enter"
	CollisionEventExit  CollisionEventKind = "exit"
)

// CollisionEvent is emitted when a collision pair is registered or released.
type CollisionEvent struct {
	Kind     CollisionEventKind
	Subject  Entity
	Collider Entity
	Depth    cp.Vector
}

// MovementEvent is emitted when the movement controller changes an entity state.
type MovementEvent struct {
	Entity    Entity
	Primary   string
	Secondary string
	Animation string
}

// EventQueue is a simple FIFO queue cleared at the end of every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Items returns the events pushed so far this tick without clearing them.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
