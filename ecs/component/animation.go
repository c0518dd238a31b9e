package component

type AnimationClip struct {
	Name       string
	Row        int
	ColStart   int
	FrameCount int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Clips      map[string]AnimationClip
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool

	missing map[string]bool
}

// NoteMissing records a request for a clip the entity lacks. It reports
// true the first time name is seen.
func (a *Animation) NoteMissing(name string) bool {
	if a.missing[name] {
		return false
	}
	if a.missing == nil {
		a.missing = make(map[string]bool)
	}
	a.missing[name] = true
	return true
}

var AnimationComponent = NewComponent[Animation]()
