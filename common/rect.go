package common

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrNegativeSize = errors.New("common: rect has negative size")

// Rect is an axis-aligned box anchored at its minimum corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(pos cp.Vector, width, height float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: width, Height: height}
}

func (r Rect) HalfExtents() cp.Vector {
	return cp.Vector{X: r.Width / 2, Y: r.Height / 2}
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset cp.Vector) Rect {
	r.X += offset.X
	r.Y += offset.Y
	return r
}

// Intersects reports a strict overlap on both axes. Touching edges do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Validate() error {
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: %gx%g", ErrNegativeSize, r.Width, r.Height)
	}
	return nil
}

// BB converts r to a chipmunk bounding box (y-up: B is the min edge).
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}
