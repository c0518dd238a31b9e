package component

import "fmt"

// PrimaryState is the horizontal motion mode.
type PrimaryState int

const (
	PrimaryIdle PrimaryState = iota
	PrimaryWalkingLeft
	PrimaryWalkingRight
	// PrimaryDead is terminal. Dead entities are skipped by collision and
	// movement processing.
	PrimaryDead
)

func (s PrimaryState) String() string {
	switch s {
	case PrimaryIdle:
		return "idle"
	case PrimaryWalkingLeft:
		return "walking_left"
	case PrimaryWalkingRight:
		return "walking_right"
	case PrimaryDead:
		return "dead"
	}
	return fmt.Sprintf("primary(%d)", int(s))
}

// ParsePrimaryState accepts the names produced by String.
func ParsePrimaryState(name string) (PrimaryState, error) {
	for s := PrimaryIdle; s <= PrimaryDead; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return PrimaryIdle, fmt.Errorf("component: unknown primary state %q", name)
}

// SecondaryState is the vertical motion mode.
type SecondaryState int

const (
	SecondaryIdle SecondaryState = iota
	SecondaryJumping
	SecondaryFalling
	SecondaryClimbing
)

func (s SecondaryState) String() string {
	switch s {
	case SecondaryIdle:
		return "idle"
	case SecondaryJumping:
		return "jumping"
	case SecondaryFalling:
		return "falling"
	case SecondaryClimbing:
		return "climbing"
	}
	return fmt.Sprintf("secondary(%d)", int(s))
}

func ParseSecondaryState(name string) (SecondaryState, error) {
	for s := SecondaryIdle; s <= SecondaryClimbing; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return SecondaryIdle, fmt.Errorf("component: unknown secondary state %q", name)
}

// Airborne reports whether the entity is off the ground for animation purposes.
func (s SecondaryState) Airborne() bool {
	return s == SecondaryJumping || s == SecondaryFalling || s == SecondaryClimbing
}

// Motion holds the two orthogonal state machine axes plus the ducking flag.
type Motion struct {
	Primary   PrimaryState
	Secondary SecondaryState
	Ducking   bool
}

func (m *Motion) Dead() bool {
	return m != nil && m.Primary == PrimaryDead
}

var MotionComponent = NewComponent[Motion]()
