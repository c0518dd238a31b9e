package common

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Overlap returns the signed penetration depth of subject a into collider b.
// Applying the depth to a along one axis separates the boxes on that axis.
//
// The zero vector means "no overlap". Boxes that only touch along an edge
// (center distance exactly equal to the sum of half extents) also yield the
// zero vector, so an exact contact cannot be told apart from a miss.
func Overlap(a, b Rect) cp.Vector {
	halfA := a.HalfExtents()
	halfB := b.HalfExtents()
	centerA := a.Center()
	centerB := b.Center()

	distanceX := centerA.X - centerB.X
	distanceY := centerA.Y - centerB.Y
	minDistanceX := halfA.X + halfB.X
	minDistanceY := halfA.Y + halfB.Y

	if Abs(distanceX) >= minDistanceX || Abs(distanceY) >= minDistanceY {
		return cp.Vector{}
	}

	return cp.Vector{
		X: penetration(distanceX, minDistanceX),
		Y: penetration(distanceY, minDistanceY),
	}
}

// OverlapChecked is Overlap with malformed boxes rejected.
func OverlapChecked(a, b Rect) (cp.Vector, error) {
	if err := a.Validate(); err != nil {
		return cp.Vector{}, fmt.Errorf("subject: %w", err)
	}
	if err := b.Validate(); err != nil {
		return cp.Vector{}, fmt.Errorf("collider: %w", err)
	}
	return Overlap(a, b), nil
}

// IsZero reports whether depth is the no-overlap sentinel.
func IsZero(depth cp.Vector) bool {
	return depth.X == 0 && depth.Y == 0
}

// Centers on the same line take the negative branch.
func penetration(distance, minDistance float64) float64 {
	if distance > 0 {
		return minDistance - distance
	}
	return -minDistance - distance
}
