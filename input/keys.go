package input

// KeyCount is the number of trackable key codes. Codes follow the virtual-key
// numbering used by desktop keyboards: printable letters and digits use their
// ASCII values.
const KeyCount = 256

// Unbound is returned by LookupBinding for names without a binding.
const Unbound = -1

const (
	KeyBackspace = 8
	KeyTab       = 9
	KeyEnter     = 13
	KeyShift     = 16
	KeyControl   = 17
	KeyAlt       = 18
	KeyEscape    = 27
	KeySpace     = 32
	KeyLeft      = 37
	KeyUp        = 38
	KeyRight     = 39
	KeyDown      = 40
	Key0         = 48
	Key9         = 57
	KeyA         = 65
	KeyD         = 68
	KeyS         = 83
	KeyW         = 87
	KeyZ         = 90
	KeyF1        = 112
	KeyF12       = 123
)

// Binding names consumed by the movement controller.
const (
	BindJump      = "Jump"
	BindClimb     = "Climb"
	BindDuck      = "Duck"
	BindMoveLeft  = "Move Left"
	BindMoveRight = "Move Right"
)

// HardwareSource reports the raw device state. The tracker uses it to poll
// and to re-sync keys whose release event was lost.
type HardwareSource interface {
	IsKeyDown(code int) bool
	IsMouseDown(button MouseButton) bool
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
)

func validCode(code int) bool {
	return code >= 0 && code < KeyCount
}
