package engine

// Kind discriminates input events.
type Kind uint8

const (
	// KindQuit asks the application to shut down.
	KindQuit Kind = iota
	// KindKeyUp reports a released key.
	KindKeyUp
	// KindPointerDown reports a pressed pointer button and its pixel
	// position. Sources re-emit it every frame while the button stays
	// down, so a drag produces one event per frame.
	KindPointerDown
)

// Key identifies the keys the simulations care about, independent of any
// particular input backend.
type Key uint8

const (
	KeyUnknown Key = iota
	KeySpace
	KeyC
	KeyL
	KeyN
	KeyR
	KeyS
	KeyQ
	KeyEscape
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Event is one discrete input occurrence. A frame's batch preserves the order
// the events happened in.
type Event struct {
	Kind   Kind
	Key    Key
	Button Button
	X, Y   int
}

// Quit builds a shutdown event.
func Quit() Event { return Event{Kind: KindQuit} }

// KeyUp builds a key release event.
func KeyUp(k Key) Event { return Event{Kind: KindKeyUp, Key: k} }

// PointerDown builds a pointer press event at a pixel position.
func PointerDown(b Button, x, y int) Event {
	return Event{Kind: KindPointerDown, Button: b, X: x, Y: y}
}
