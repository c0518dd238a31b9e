package input

// Tracker holds the current and previous-frame key and mouse state plus the
// key-binding table.
type Tracker struct {
	keys     [KeyCount]bool
	lastKeys [KeyCount]bool

	leftMouse      bool
	lastLeftMouse  bool
	rightMouse     bool
	lastRightMouse bool

	bindings Bindings
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Reset releases every key and both mouse buttons. The last-frame key shadow
// is kept, so a key held before the reset reads as released on the next
// edge query.
func (t *Tracker) Reset() {
	t.keys = [KeyCount]bool{}
	t.leftMouse = false
	t.lastLeftMouse = false
	t.rightMouse = false
	t.lastRightMouse = false
}

// RefreshEdgeState releases keys the tracker still holds but the hardware no
// longer reports. Some backends drop key-up notifications.
func (t *Tracker) RefreshEdgeState(src HardwareSource) {
	if src == nil {
		return
	}
	for code := range t.keys {
		if t.keys[code] && !src.IsKeyDown(code) {
			t.keys[code] = false
		}
	}
}

// Poll samples every key and both mouse buttons from src.
func (t *Tracker) Poll(src HardwareSource) {
	if src == nil {
		return
	}
	for code := range t.keys {
		t.keys[code] = src.IsKeyDown(code)
	}
	t.leftMouse = src.IsMouseDown(MouseLeft)
	t.rightMouse = src.IsMouseDown(MouseRight)
}

// Snapshot copies the current state into the last-frame shadow. Call once at
// the end of a tick.
func (t *Tracker) Snapshot() {
	t.lastKeys = t.keys
	t.lastLeftMouse = t.leftMouse
	t.lastRightMouse = t.rightMouse
}

func (t *Tracker) Key(code int) bool {
	return validCode(code) && t.keys[code]
}

func (t *Tracker) SetKey(code int, down bool) {
	if validCode(code) {
		t.keys[code] = down
	}
}

func (t *Tracker) LastKey(code int) bool {
	return validCode(code) && t.lastKeys[code]
}

func (t *Tracker) SetLastKey(code int, down bool) {
	if validCode(code) {
		t.lastKeys[code] = down
	}
}

// KeyPressed reports a key that went down since the last snapshot.
func (t *Tracker) KeyPressed(code int) bool {
	return t.Key(code) && !t.LastKey(code)
}

// KeyReleased reports a key that went up since the last snapshot.
func (t *Tracker) KeyReleased(code int) bool {
	return !t.Key(code) && t.LastKey(code)
}

func (t *Tracker) LeftMouse() bool { return t.leftMouse }
func (t *Tracker) SetLeftMouse(down bool) { t.leftMouse = down }
func (t *Tracker) LastLeftMouse() bool { return t.lastLeftMouse }
func (t *Tracker) SetLastLeftMouse(down bool) { t.lastLeftMouse = down }

func (t *Tracker) RightMouse() bool { return t.rightMouse }
func (t *Tracker) SetRightMouse(down bool) { t.rightMouse = down }
func (t *Tracker) LastRightMouse() bool { return t.lastRightMouse }
func (t *Tracker) SetLastRightMouse(down bool) { t.lastRightMouse = down }

// Bind registers a binding; the first registration of a name wins.
func (t *Tracker) Bind(name string, code int) bool {
	return t.bindings.Bind(name, code)
}

// LookupBinding returns the code bound to name, or Unbound.
func (t *Tracker) LookupBinding(name string) int {
	return t.bindings.Lookup(name)
}

// BindingDown reports whether the key bound to name is held.
func (t *Tracker) BindingDown(name string) bool {
	return t.Key(t.LookupBinding(name))
}

func (t *Tracker) Bindings() *Bindings {
	return &t.bindings
}
