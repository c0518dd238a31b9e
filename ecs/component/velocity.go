package component

import "github.com/jakecoffman/cp"

// Velocity is expressed in world units per second.
type Velocity struct {
	X float64
	Y float64
}

func (v *Velocity) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

var VelocityComponent = NewComponent[Velocity]()

// GravityScale multiplies world gravity for an entity. Entities without one
// fall at scale 1.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
