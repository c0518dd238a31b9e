package component

// CollisionScript attaches a tengo script that runs on collision enter/exit.
type CollisionScript struct {
	Path   string
	Source []byte
}

var CollisionScriptComponent = NewComponent[CollisionScript]()
