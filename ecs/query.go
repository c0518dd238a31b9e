package ecs

import (
	"sort"

	"github.com/milk9111/scrollcore/ecs/component"
)

// Query returns live entities holding every listed component, in ascending
// slot order so systems iterate deterministically.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate the smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	slots := make([]entityID, 0, sets[0].Len())
	for _, id := range sets[0].denseIDs {
		matched := true
		for _, s := range sets[1:] {
			if !s.Has(id) {
				matched = false
				break
			}
		}
		if matched {
			slots = append(slots, id)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	out := make([]Entity, 0, len(slots))
	for _, id := range slots {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}
