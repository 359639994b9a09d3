package deepzoom

// KeysHeld records which keys the viewport reacts to are currently down.
type KeysHeld struct {
	Shift   bool
	Ctrl    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	ZoomIn  bool
	ZoomOut bool
}

// set updates the flag for k. Unknown keys and Home are ignored.
func (h *KeysHeld) set(k Key, down bool) {
	switch k {
	case KeyArrowUp:
		h.Up = down
	case KeyArrowDown:
		h.Down = down
	case KeyArrowLeft:
		h.Left = down
	case KeyArrowRight:
		h.Right = down
	case KeyZoomIn:
		h.ZoomIn = down
	case KeyZoomOut:
		h.ZoomOut = down
	case KeyShift:
		h.Shift = down
	case KeyControl:
		h.Ctrl = down
	}
}

// Motion reports whether any key that drives the animation loop is held.
// Modifiers do not count.
func (h KeysHeld) Motion() bool {
	return h.Left || h.Right || h.Up || h.Down || h.ZoomIn || h.ZoomOut
}
