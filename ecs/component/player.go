package component

import "github.com/milk9111/scrollcore/input"

// PlayerTag marks the entity driven by the live input tracker.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Controller carries the few behavioral deltas between the player flavor and
// generic entities.
type Controller struct {
	// FixedSubjectBox keeps the subject box at its live position when a
	// resolver offset is given; only the collider box is shifted.
	FixedSubjectBox bool
	// SkipDuckAnimation toggles the ducking flag without playing animations.
	SkipDuckAnimation bool
}

var ControllerComponent = NewComponent[Controller]()

// HeldKeys accumulates discrete key events for entities driven by injected
// input rather than the live tracker.
type HeldKeys struct {
	Keys [input.KeyCount]bool
}

func (h *HeldKeys) Down(code int) bool {
	if h == nil || code < 0 || code >= input.KeyCount {
		return false
	}
	return h.Keys[code]
}

func (h *HeldKeys) Set(code int, down bool) {
	if h == nil || code < 0 || code >= input.KeyCount {
		return
	}
	h.Keys[code] = down
}

var HeldKeysComponent = NewComponent[HeldKeys]()
