package component

import "github.com/jakecoffman/cp"

// Transform is the world position of an entity's minimum corner (y-up).
type Transform struct {
	X float64
	Y float64
}

func (t *Transform) Position() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

var TransformComponent = NewComponent[Transform]()
