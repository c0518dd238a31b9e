package system

import "github.com/milk9111/scrollcore/ecs"

// CollisionPair is an ordered (subject, collider) pair of entity handles.
type CollisionPair struct {
	Subject  ecs.Entity
	Collider ecs.Entity
}

// CollisionRegistry records which pairs are currently overlapping so the
// resolver fires enter and exit once per overlap episode. Pairs are kept in
// insertion order; the index makes lookups constant time.
type CollisionRegistry struct {
	pairs []CollisionPair
	index map[CollisionPair]int
}

func NewCollisionRegistry() *CollisionRegistry {
	return &CollisionRegistry{index: make(map[CollisionPair]int)}
}

// Add inserts the pair iff it is not present and reports whether it did.
func (r *CollisionRegistry) Add(subject, collider ecs.Entity) bool {
	key := CollisionPair{Subject: subject, Collider: collider}
	if _, ok := r.index[key]; ok {
		return false
	}
	if r.index == nil {
		r.index = make(map[CollisionPair]int)
	}
	r.index[key] = len(r.pairs)
	r.pairs = append(r.pairs, key)
	return true
}

// Remove deletes the pair if present and reports whether it did.
func (r *CollisionRegistry) Remove(subject, collider ecs.Entity) bool {
	key := CollisionPair{Subject: subject, Collider: collider}
	i, ok := r.index[key]
	if !ok {
		return false
	}
	r.removeAt(i)
	return true
}

func (r *CollisionRegistry) Has(subject, collider ecs.Entity) bool {
	_, ok := r.index[CollisionPair{Subject: subject, Collider: collider}]
	return ok
}

func (r *CollisionRegistry) Len() int {
	return len(r.pairs)
}

// Pairs returns the registered pairs in insertion order.
func (r *CollisionRegistry) Pairs() []CollisionPair {
	return append([]CollisionPair(nil), r.pairs...)
}

// Forget drops every pair involving e without notifying anyone and returns
// the dropped pairs.
func (r *CollisionRegistry) Forget(e ecs.Entity) []CollisionPair {
	var dropped []CollisionPair
	for i := 0; i < len(r.pairs); {
		p := r.pairs[i]
		if p.Subject == e || p.Collider == e {
			dropped = append(dropped, p)
			r.removeAt(i)
			continue
		}
		i++
	}
	return dropped
}

func (r *CollisionRegistry) Clear() {
	r.pairs = nil
	r.index = make(map[CollisionPair]int)
}

// removeAt keeps insertion order, so every later index shifts down by one.
func (r *CollisionRegistry) removeAt(i int) {
	delete(r.index, r.pairs[i])
	copy(r.pairs[i:], r.pairs[i+1:])
	r.pairs = r.pairs[:len(r.pairs)-1]
	for j := i; j < len(r.pairs); j++ {
		r.index[r.pairs[j]] = j
	}
}

// CollidersOf returns the colliders currently paired with subject.
func (r *CollisionRegistry) CollidersOf(subject ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	for _, p := range r.pairs {
		if p.Subject == subject {
			out = append(out, p.Collider)
		}
	}
	return out
}
