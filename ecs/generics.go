package ecs

import (
	"fmt"

	"github.com/milk9111/scrollcore/ecs/component"
)

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// ForEach visits every live entity holding kind, in ascending slot order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range Query(w, kind.ID()) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range Query(w, ka.ID(), kb.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range Query(w, ka.ID(), kb.ID(), kc.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

// First returns the lowest-slot entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	ents := Query(w, kind.ID())
	if len(ents) == 0 {
		return Nil, false
	}
	return ents[0], true
}
