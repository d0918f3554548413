package port

// Key identifies a keyboard key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyS
	KeyD
	KeyA
	KeySpace
	KeyEscape
)

// String returns the string representation of the key
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyA:
		return "A"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyEvent is a key press or release. Repeat marks auto-repeated presses.
type KeyEvent struct {
	Key    Key
	Down   bool
	Repeat bool
}

// Press returns a non-repeat key-down event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Down: true}
}

// Release returns a key-up event.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k}
}
