package deepzoom

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultResetDuration is how long the Home key takes to return to the
// initial view.
const DefaultResetDuration = 600 * time.Millisecond

const (
	maxFrameDeltaMs = 100 // longest frame delta a key-driven tick honours
	keySpeedMs      = 500 // ms of held key per unit of pan or zoom

	// Gesture values are rounded to multiples of 2^-gestureBits and wheel
	// deltas to 2^-wheelBits pixels before they enter the exact transform.
	// Every composed step multiplies its denominators into all entries, so
	// a raw float64 would add up to 53 bits per event.
	gestureBits = 32
	wheelBits   = 10
)

// resetAnim tweens the viewport transform from start back to identity.
type resetAnim struct {
	start Matrix3[Rat]
	tween *gween.Tween
}

// Viewport is the pan/zoom state of the fractal view: the accumulated
// transform plus the input state that drives it. It is not safe for
// concurrent use; a single owner feeds it events and ticks.
type Viewport struct {
	// ResetDuration is the length of the Home key animation.
	ResetDuration time.Duration
	// ResetEase shapes the Home key animation.
	ResetEase ease.TweenFunc

	viewportTransform Matrix3[Rat]
	windowTransform   Matrix3[Rat]

	keys        KeysHeld
	pointers    pointerList
	lastFrameMs float64
	animating   bool

	// Surface size in pixels, from the last resize.
	width, height int

	reset *resetAnim
}

// NewViewport creates a viewport showing fractal coordinates [-1, 1] on both
// axes.
func NewViewport() *Viewport {
	return &Viewport{
		ResetDuration:     DefaultResetDuration,
		ResetEase:         ease.OutCubic,
		viewportTransform: Identity[Rat](),
		windowTransform:   Identity[Rat](),
	}
}

// Transform returns the render transform, viewport * window.
func (v *Viewport) Transform() Matrix3[Rat] {
	return v.viewportTransform.Mul(v.windowTransform)
}

// ViewportTransform returns the accumulated pan/zoom transform.
func (v *Viewport) ViewportTransform() Matrix3[Rat] { return v.viewportTransform }

// SetViewportTransform replaces the accumulated pan/zoom transform and cancels
// any running reset animation.
func (v *Viewport) SetViewportTransform(m Matrix3[Rat]) {
	v.viewportTransform = m
	v.reset = nil
}

// WindowTransform returns the aspect-ratio correction from the last resize.
func (v *Viewport) WindowTransform() Matrix3[Rat] { return v.windowTransform }

// Keys returns the held key flags.
func (v *Viewport) Keys() KeysHeld { return v.keys }

// Pointers returns a copy of the tracked pointers.
func (v *Viewport) Pointers() []Pointer {
	out := make([]Pointer, len(v.pointers))
	copy(out, v.pointers)
	return out
}

// Size returns the surface size from the last resize.
func (v *Viewport) Size() (width, height int) { return v.width, v.height }

// Animating reports whether the key-driven loop is scheduled.
func (v *Viewport) Animating() bool { return v.animating }

// Resetting reports whether the Home key animation is running.
func (v *Viewport) Resetting() bool { return v.reset != nil }

// Anchor returns the fractal coordinate the view is centered on: the render
// transform applied to the origin, at full precision.
func (v *Viewport) Anchor() (x, y Rat) {
	x, y, _ = v.Transform().Apply(Rat{}, Rat{})
	return x, y
}

// ZoomBits returns log2 of the inverse horizontal scale: how many binary
// digits of magnification the view has accumulated. Zooming out reports a
// negative value.
func (v *Viewport) ZoomBits() int {
	s := v.Transform()[0]
	if s.Sign() == 0 {
		return 0
	}
	return -s.BitExp()
}

// compose right-multiplies step into the accumulated transform, so step acts
// in the current local frame.
func (v *Viewport) compose(step Matrix3[Rat]) {
	v.viewportTransform = v.viewportTransform.Mul(step)
}

// Handle applies one input event and reports what the host must do next.
// nowMs is the host clock in milliseconds.
func (v *Viewport) Handle(ev Event, nowMs float64) Effect {
	switch e := ev.(type) {
	case KeyDownEvent:
		return v.keyDown(e.Key, nowMs)
	case KeyUpEvent:
		v.keys.set(e.Key, false)
		return EffectNone
	case PointerDownEvent:
		v.pointers.upsert(e.ID, e.Position(), pointerGoingDown)
		return EffectNone
	case PointerMoveEvent:
		return v.pointerMove(e.PointerEvent)
	case PointerUpEvent:
		v.pointers.upsert(e.ID, e.Position(), pointerGoingUp)
		return EffectNone
	case PointerCancelEvent, PointerLeaveEvent, FocusChangeEvent:
		v.ReleaseAll()
		return EffectNone
	case WheelEvent:
		return v.wheel(e)
	case ResizeEvent:
		if err := v.Resize(e.Width, e.Height); err != nil {
			Logger().Warn("viewport: resize ignored", "width", e.Width, "height", e.Height, "error", err)
			return EffectNone
		}
		return EffectDraw
	}
	return EffectNone
}

// ReleaseAll forgets every held key and tracked pointer and stops the
// animation loop. Hosts call it when they may have missed release events.
func (v *Viewport) ReleaseAll() {
	v.keys = KeysHeld{}
	v.pointers.clear()
	v.StopAnimation()
}

// StopAnimation ends the key-driven loop and any reset animation. The loop
// observes it at its next tick.
func (v *Viewport) StopAnimation() {
	v.animating = false
	v.reset = nil
}

// Resize recomputes the window transform for a surface of the given size so
// that fractal space is not stretched.
func (v *Viewport) Resize(width, height int) error {
	ratio, err := RatFromInt(int64(height)).Div(RatFromInt(int64(width)))
	if err != nil {
		return fmt.Errorf("resize %dx%d: %w", width, height, err)
	}
	v.windowTransform = Scale(One[Rat](), ratio)
	v.width, v.height = width, height
	return nil
}

func (v *Viewport) keyDown(k Key, nowMs float64) Effect {
	v.keys.set(k, true)
	switch {
	case k == KeyHome:
		v.startReset()
	case v.keys.Motion():
		v.reset = nil
	default:
		return EffectNone
	}
	v.startAnimation(nowMs)
	return EffectAnimate
}

func (v *Viewport) startAnimation(nowMs float64) {
	if v.animating {
		return
	}
	v.animating = true
	v.lastFrameMs = nowMs
}

func (v *Viewport) startReset() {
	d := float32(v.ResetDuration.Seconds())
	if d <= 0 {
		d = float32(DefaultResetDuration.Seconds())
	}
	fn := v.ResetEase
	if fn == nil {
		fn = ease.OutCubic
	}
	v.reset = &resetAnim{
		start: v.viewportTransform,
		tween: gween.New(0, 1, d, fn),
	}
}

// --- Pointer gestures ---

func (v *Viewport) pointerMove(e PointerEvent) Effect {
	i, delta := v.pointers.upsert(e.ID, e.Position(), pointerMoving)
	p := v.pointers[i]
	if p.Down == nil {
		return EffectNone
	}
	v.reset = nil
	if len(v.pointers) == 1 {
		v.pan(delta)
	} else {
		v.pinch(*p.Down, delta)
	}
	return EffectDraw
}

// pan moves the view with a single dragged pointer. Canvas Y grows downward
// while fractal Y grows upward, hence the sign difference.
func (v *Viewport) pan(delta Vec2) {
	dx, errX := dyadic(-delta.X, gestureBits)
	dy, errY := dyadic(delta.Y, gestureBits)
	if errX != nil || errY != nil {
		Logger().Debug("viewport: skip pan", "dx", delta.X, "dy", delta.Y)
		return
	}
	v.compose(Translate(dx, dy))
}

// pinch scales around the centroid of the press positions. The moving
// pointer's delta is projected onto the direction from the centroid to its
// own press position, so moving away from the other pointers zooms one way and
// moving toward them the other.
func (v *Viewport) pinch(down, delta Vec2) {
	mid, ok := v.pointers.pressMidpoint()
	if !ok {
		return
	}
	i := delta.X * signum(down.X-mid.X)
	j := delta.Y * signum(down.Y-mid.Y)
	factor := 1 - math.Sqrt(i*i+j*j)*signum(i)*signum(j)

	mx, errX := dyadic(mid.X, gestureBits)
	my, errY := dyadic(mid.Y, gestureBits)
	f, errF := dyadic(factor, gestureBits)
	if errX != nil || errY != nil || errF != nil {
		Logger().Debug("viewport: skip pinch", "factor", factor)
		return
	}
	v.compose(ScaleAround(mx, my, f))
}

// dyadic rounds f to the nearest multiple of 2^-bits.
func dyadic(f float64, bits int) (Rat, error) {
	s := math.Ldexp(1, bits)
	return RatFromFloat64(math.Round(f*s) / s)
}

// signum returns 1 for positive values and +0, -1 for negative values and -0,
// and NaN for NaN.
func signum(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}

// --- Wheel ---

func (v *Viewport) wheel(e WheelEvent) Effect {
	// Ctrl+wheel belongs to the host (browser pinch-zoom).
	if v.keys.Ctrl {
		return EffectNone
	}
	dx, errX := dyadic(e.DeltaX, wheelBits)
	dy, errY := dyadic(e.DeltaY, wheelBits)
	if errX != nil || errY != nil {
		return EffectConsumed
	}
	w, h := RatFromInt(int64(v.width)), RatFromInt(int64(v.height))
	fx, errX := dx.Div(w)
	fy, errY := dy.Div(h)

	if v.keys.Shift {
		if errX != nil || errY != nil {
			Logger().Debug("viewport: skip wheel pan", "error", firstErr(errX, errY))
			return EffectConsumed
		}
		one, two := One[Rat](), Two[Rat]()
		v.reset = nil
		v.compose(Scale(fx.Mul(two).Sub(one), fy.Mul(two).Sub(one)))
		return EffectConsumed | EffectDraw
	}

	var frac Rat
	var err error
	if dx.Abs().Cmp(dy.Abs()) > 0 {
		frac, err = fx, errX
	} else {
		frac, err = fy, errY
	}
	if err != nil {
		Logger().Debug("viewport: skip wheel zoom", "error", err)
		return EffectConsumed
	}
	if len(v.pointers) == 0 {
		return EffectConsumed
	}
	pos := v.pointers[0].Position
	px, errX := dyadic(pos.X, gestureBits)
	py, errY := dyadic(pos.Y, gestureBits)
	if errX != nil || errY != nil {
		return EffectConsumed
	}
	v.reset = nil
	v.compose(ScaleAround(px, py, One[Rat]().Add(frac)))
	return EffectConsumed | EffectDraw
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// --- Key-driven animation ---

// Tick advances the key-driven animation to nowMs. It does nothing unless the
// loop is running, and stops the loop when no motion key is held and no reset
// is in progress.
func (v *Viewport) Tick(nowMs float64) Effect {
	if !v.animating {
		return EffectNone
	}
	if !v.keys.Motion() && v.reset == nil {
		v.animating = false
		return EffectNone
	}

	deltaMs := nowMs - v.lastFrameMs
	v.lastFrameMs = nowMs

	if v.reset != nil {
		v.stepReset(deltaMs)
		return EffectDraw
	}

	mul, err := frameMul(deltaMs)
	if err != nil {
		Logger().Debug("viewport: skip tick", "delta_ms", deltaMs, "error", err)
		return EffectNone
	}
	one := One[Rat]()
	if v.keys.ZoomIn {
		v.zoomAroundTranslation(one.Sub(mul))
	}
	if v.keys.ZoomOut {
		v.zoomAroundTranslation(one.Add(mul))
	}
	if v.keys.Left {
		v.compose(Translate(mul.Neg(), Rat{}))
	}
	if v.keys.Right {
		v.compose(Translate(mul, Rat{}))
	}
	if v.keys.Up {
		v.compose(Translate(Rat{}, mul))
	}
	if v.keys.Down {
		v.compose(Translate(Rat{}, mul.Neg()))
	}
	return EffectDraw
}

// frameMul converts a frame delta into the per-tick step size,
// min(maxFrameDeltaMs, deltaMs) / keySpeedMs, with deltaMs rounded to whole
// milliseconds so each step adds at most log2(keySpeedMs) bits to the
// transform. A clock running backwards yields 0.
func frameMul(deltaMs float64) (Rat, error) {
	if math.IsNaN(deltaMs) || math.IsInf(deltaMs, 0) {
		return Rat{}, ErrNonFinite
	}
	ms := math.Max(0, math.Min(maxFrameDeltaMs, math.Round(deltaMs)))
	return RatFromInt(int64(ms)).Div(RatFromInt(keySpeedMs))
}

// zoomAroundTranslation scales around the point stored at entries (0,2) and
// (1,2) of the accumulated transform.
func (v *Viewport) zoomAroundTranslation(factor Rat) {
	px := v.viewportTransform.At(0, 2)
	py := v.viewportTransform.At(1, 2)
	v.compose(ScaleAround(px, py, factor))
}

func (v *Viewport) stepReset(deltaMs float64) {
	t, done := v.reset.tween.Update(float32(deltaMs / 1000))
	if done {
		v.viewportTransform = Identity[Rat]()
		v.reset = nil
		return
	}
	tr, err := RatFromFloat32(t)
	if err != nil {
		return
	}
	v.viewportTransform = v.reset.start.Lerp(Identity[Rat](), tr)
}
