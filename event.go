package deepzoom

// Event is one discrete input delivered by the host. The concrete types are
// the only implementations; Viewport.Handle switches over them.
type Event interface {
	isEvent()
}

// Key identifies a key the viewport reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyZoomIn  // "=" or "+"
	KeyZoomOut // "-" or "_"
	KeyShift
	KeyControl
	KeyHome // animated reset to the initial view
)

var keyNames = [...]string{
	KeyUnknown:    "Unknown",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyZoomIn:     "+",
	KeyZoomOut:    "-",
	KeyShift:      "Shift",
	KeyControl:    "Control",
	KeyHome:       "Home",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// ParseKey maps a DOM KeyboardEvent.key value to a Key. Unrecognised names
// return KeyUnknown.
func ParseKey(name string) Key {
	switch name {
	case "ArrowUp":
		return KeyArrowUp
	case "ArrowDown":
		return KeyArrowDown
	case "ArrowLeft":
		return KeyArrowLeft
	case "ArrowRight":
		return KeyArrowRight
	case "=", "+":
		return KeyZoomIn
	case "-", "_":
		return KeyZoomOut
	case "Shift":
		return KeyShift
	case "Control":
		return KeyControl
	case "Home":
		return KeyHome
	}
	return KeyUnknown
}

// KeyDownEvent reports a key press.
type KeyDownEvent struct{ Key Key }

// KeyUpEvent reports a key release.
type KeyUpEvent struct{ Key Key }

// PointerEvent is the payload shared by pointer down, move and up events.
// ClientX and ClientY are in client pixels; Rect is the on-screen rectangle of
// the render surface used to normalize them.
type PointerEvent struct {
	ID      int
	ClientX float64
	ClientY float64
	Rect    Rect
}

// Position returns the pointer location normalized to [-1, 1].
func (e PointerEvent) Position() Vec2 {
	return e.Rect.Normalize(e.ClientX, e.ClientY)
}

// PointerDownEvent reports a pointer making contact or a button press.
type PointerDownEvent struct{ PointerEvent }

// PointerMoveEvent reports a pointer moving, pressed or not.
type PointerMoveEvent struct{ PointerEvent }

// PointerUpEvent reports a pointer losing contact or a button release.
type PointerUpEvent struct{ PointerEvent }

// PointerCancelEvent reports that the host stopped delivering pointer input.
type PointerCancelEvent struct{}

// PointerLeaveEvent reports a pointer leaving the render surface.
type PointerLeaveEvent struct{}

// WheelEvent reports a scroll in DOM pixel units: positive DeltaY scrolls
// down.
type WheelEvent struct {
	DeltaX, DeltaY float64
}

// ResizeEvent reports new render surface dimensions in pixels.
type ResizeEvent struct {
	Width, Height int
}

// FocusChangeEvent reports the window gaining or losing focus.
type FocusChangeEvent struct{ Focused bool }

func (KeyDownEvent) isEvent()       {}
func (KeyUpEvent) isEvent()         {}
func (PointerDownEvent) isEvent()   {}
func (PointerMoveEvent) isEvent()   {}
func (PointerUpEvent) isEvent()     {}
func (PointerCancelEvent) isEvent() {}
func (PointerLeaveEvent) isEvent()  {}
func (WheelEvent) isEvent()         {}
func (ResizeEvent) isEvent()        {}
func (FocusChangeEvent) isEvent()   {}
