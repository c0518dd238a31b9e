package input

// StaticSource is a HardwareSource backed by plain state, used by headless
// runs and tests.
type StaticSource struct {
	Keys  [KeyCount]bool
	Mouse [2]bool
}

func (s *StaticSource) IsKeyDown(code int) bool {
	return s != nil && validCode(code) && s.Keys[code]
}

func (s *StaticSource) IsMouseDown(button MouseButton) bool {
	if s == nil || button < MouseLeft || button > MouseRight {
		return false
	}
	return s.Mouse[button]
}

func (s *StaticSource) Press(code int) {
	if validCode(code) {
		s.Keys[code] = true
	}
}

func (s *StaticSource) Release(code int) {
	if validCode(code) {
		s.Keys[code] = false
	}
}
