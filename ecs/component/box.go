package component

// Box is the collision size of an entity. It is not changed by collision
// resolution.
type Box struct {
	Width  float64
	Height float64
}

var BoxComponent = NewComponent[Box]()

// Collider marks an entity as something others collide against. Trigger
// colliders only report enter/exit and never push the subject out.
type Collider struct {
	Trigger bool
}

var ColliderComponent = NewComponent[Collider]()
