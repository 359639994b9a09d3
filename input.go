package deepzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	maxPointers            = 10 // pointer 0 = mouse, 1-9 = touch
	mousePointerID         = 0
	DefaultWheelLinePixels = 100.0 // DOM pixels per ebiten wheel notch
)

// keyBindings maps ebiten keys to viewport keys. Several ebiten keys may share
// a Key.
var keyBindings = []struct {
	ebiten ebiten.Key
	key    Key
}{
	{ebiten.KeyArrowUp, KeyArrowUp},
	{ebiten.KeyArrowDown, KeyArrowDown},
	{ebiten.KeyArrowLeft, KeyArrowLeft},
	{ebiten.KeyArrowRight, KeyArrowRight},
	{ebiten.KeyEqual, KeyZoomIn},
	{ebiten.KeyNumpadAdd, KeyZoomIn},
	{ebiten.KeyMinus, KeyZoomOut},
	{ebiten.KeyNumpadSubtract, KeyZoomOut},
	{ebiten.KeyShift, KeyShift},
	{ebiten.KeyControl, KeyControl},
	{ebiten.KeyHome, KeyHome},
}

// inputSource polls ebiten once per tick and translates what changed into
// Events.
//
// The mouse is pointer 0 and hovers even without a button held, so it would
// count as a second pointer under any touch gesture. While a touch is down
// the mouse is ignored, and a touch gesture that starts while earlier
// pointers are still tracked is preceded by a PointerLeaveEvent so the
// viewport sees only the fingers.
type inputSource struct {
	wheelLinePixels float64

	mouseSeen   bool
	mouseX      int
	mouseY      int
	mouseInside bool
	focused     bool

	// tracked is set once a pointer event has been emitted since the last
	// event that clears the viewport's pointer list.
	tracked bool

	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchPos  [maxPointers][2]int
	touchBuf  []ebiten.TouchID

	events []Event
}

func newInputSource(wheelLinePixels float64) *inputSource {
	if wheelLinePixels <= 0 {
		wheelLinePixels = DefaultWheelLinePixels
	}
	return &inputSource{wheelLinePixels: wheelLinePixels, focused: true}
}

// poll returns the events since the previous call. The slice is reused by
// the next call.
func (in *inputSource) poll(surface Rect) []Event {
	in.events = in.events[:0]
	in.pollFocus()
	in.pollKeys()
	in.pollTouches(surface)
	mx, my := ebiten.CursorPosition()
	in.mouse(mx, my,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		surface)
	in.pollWheel()
	return in.events
}

func (in *inputSource) emit(ev Event) {
	switch ev.(type) {
	case PointerDownEvent, PointerMoveEvent, PointerUpEvent:
		in.tracked = true
	case PointerLeaveEvent, PointerCancelEvent, FocusChangeEvent:
		in.tracked = false
	}
	in.events = append(in.events, ev)
}

func (in *inputSource) pollFocus() {
	focused := ebiten.IsFocused()
	if focused != in.focused {
		in.focused = focused
		in.emit(FocusChangeEvent{Focused: focused})
	}
}

func (in *inputSource) pollKeys() {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebiten) {
			in.emit(KeyDownEvent{Key: b.key})
		}
		if inpututil.IsKeyJustReleased(b.ebiten) {
			in.emit(KeyUpEvent{Key: b.key})
		}
	}
}

func (in *inputSource) pointer(id, x, y int, surface Rect) PointerEvent {
	return PointerEvent{ID: id, ClientX: float64(x), ClientY: float64(y), Rect: surface}
}

// mouse translates one tick of mouse state. It emits nothing while a touch
// is down; the cursor is re-announced once the touches end.
func (in *inputSource) mouse(mx, my int, pressed, released bool, surface Rect) {
	if in.touching() {
		in.mouseSeen = false
		in.mouseInside = false
		return
	}
	inside := surface.Contains(float64(mx), float64(my))

	if in.mouseInside && !inside {
		in.emit(PointerLeaveEvent{})
	}
	moved := !in.mouseSeen || mx != in.mouseX || my != in.mouseY
	in.mouseSeen = true
	in.mouseX, in.mouseY = mx, my
	in.mouseInside = inside
	if !inside {
		return
	}

	ev := in.pointer(mousePointerID, mx, my, surface)
	if moved {
		in.emit(PointerMoveEvent{ev})
	}
	if pressed {
		in.emit(PointerDownEvent{ev})
	}
	if released {
		in.emit(PointerUpEvent{ev})
	}
}

func (in *inputSource) pollTouches(surface Rect) {
	in.touchBuf = inpututil.AppendJustReleasedTouchIDs(in.touchBuf[:0])
	for _, tid := range in.touchBuf {
		x, y := inpututil.TouchPositionInPreviousTick(tid)
		in.touchUp(tid, x, y, surface)
	}

	in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
	for _, tid := range in.touchBuf {
		x, y := ebiten.TouchPosition(tid)
		in.touchDown(tid, x, y, surface)
	}

	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
	for _, tid := range in.touchBuf {
		x, y := ebiten.TouchPosition(tid)
		in.touchMove(tid, x, y, surface)
	}
}

// touching reports whether any touch slot is in use.
func (in *inputSource) touching() bool {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] {
			return true
		}
	}
	return false
}

func (in *inputSource) touchDown(tid ebiten.TouchID, x, y int, surface Rect) {
	if !in.touching() && in.tracked {
		in.emit(PointerLeaveEvent{})
		in.mouseInside = false
	}
	slot := in.allocTouchSlot(tid)
	if slot < 0 {
		return
	}
	in.touchPos[slot] = [2]int{x, y}
	in.emit(PointerDownEvent{in.pointer(slot, x, y, surface)})
}

func (in *inputSource) touchMove(tid ebiten.TouchID, x, y int, surface Rect) {
	slot := in.findTouchSlot(tid)
	if slot < 0 || in.touchPos[slot] == [2]int{x, y} {
		return
	}
	in.touchPos[slot] = [2]int{x, y}
	in.emit(PointerMoveEvent{in.pointer(slot, x, y, surface)})
}

func (in *inputSource) touchUp(tid ebiten.TouchID, x, y int, surface Rect) {
	slot := in.findTouchSlot(tid)
	if slot < 0 {
		return
	}
	in.emit(PointerUpEvent{in.pointer(slot, x, y, surface)})
	in.touchUsed[slot] = false
}

// findTouchSlot returns the pointer slot (1-9) holding tid, or -1.
func (in *inputSource) findTouchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	return -1
}

// allocTouchSlot assigns tid the lowest free slot, or returns -1 when all nine
// touch slots are in use.
func (in *inputSource) allocTouchSlot(tid ebiten.TouchID) int {
	if s := in.findTouchSlot(tid); s >= 0 {
		return s
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// pollWheel converts ebiten wheel offsets (notches, positive away from the
// user) into DOM-style pixel deltas (positive toward the user).
func (in *inputSource) pollWheel() {
	xoff, yoff := ebiten.Wheel()
	if xoff == 0 && yoff == 0 {
		return
	}
	in.emit(WheelEvent{
		DeltaX: -xoff * in.wheelLinePixels,
		DeltaY: -yoff * in.wheelLinePixels,
	})
}
