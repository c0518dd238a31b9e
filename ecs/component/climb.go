package component

type Climber struct {
	CanClimb bool
}

var ClimberComponent = NewComponent[Climber]()

type Climbable struct{}

var ClimbableComponent = NewComponent[Climbable]()
