package deepzoom

import (
	"time"
)

// Frame is everything a renderer needs for one draw, at render precision
// except for the anchor.
type Frame struct {
	// Seq numbers frames from 1 in the order they were built.
	Seq uint64
	// Transform is the view transform at render precision.
	Transform Matrix3[Float]
	// ScaleX and ScaleY are the leading diagonal of Transform: fractal units
	// per normalized surface unit.
	ScaleX, ScaleY float32
	// ZoomBits is the magnification in binary digits.
	ZoomBits int
	// AnchorX and AnchorY are the exact coordinate the view is centered on.
	AnchorX, AnchorY Rat
	// Orbit is the reference orbit of the anchor.
	Orbit Orbit
}

// FrameSink receives frames to draw. Render is called synchronously from
// Explorer and must not retain the Orbit slices past the next call.
type FrameSink interface {
	Render(f *Frame)
}

// FrameSinkFunc adapts a function to FrameSink.
type FrameSinkFunc func(f *Frame)

func (fn FrameSinkFunc) Render(f *Frame) { fn(f) }

// ExplorerConfig holds the tunables of an Explorer.
type ExplorerConfig struct {
	// Depth is the reference orbit length. Zero means DefaultDepth.
	Depth int
	// Precision fixes the orbit working precision in bits. Zero derives it
	// from the zoom depth of each frame.
	Precision uint
	// Bailout is passed through to OrbitOptions.
	Bailout float64
	// ResetDuration is the Home key animation length. Zero means
	// DefaultResetDuration.
	ResetDuration time.Duration
	// Debug logs per-frame timings at debug level.
	Debug bool
}

// Explorer owns a Viewport and drives it: it routes events through
// Viewport.Handle, runs the animation tick once per host frame, and turns the
// view into Frames for its sink. Exactly one goroutine may use an Explorer.
type Explorer struct {
	viewport *Viewport
	clock    Clock
	sink     FrameSink
	cfg      ExplorerConfig

	cache   OrbitCache
	pending bool
	seq     uint64
	last    Frame

	injectQueue []Event
	runner      *Script

	// OnScreenshot is called when a script asks for a screenshot. Hosts that
	// can capture the screen set it; otherwise the request is logged.
	OnScreenshot func(label string)
}

// NewExplorer creates an Explorer drawing to sink and reading time from
// clock. The first Step draws the initial view.
func NewExplorer(sink FrameSink, clock Clock, cfg ExplorerConfig) *Explorer {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	vp := NewViewport()
	if cfg.ResetDuration > 0 {
		vp.ResetDuration = cfg.ResetDuration
	}
	return &Explorer{
		viewport: vp,
		clock:    clock,
		sink:     sink,
		cfg:      cfg,
		pending:  true,
	}
}

// Viewport returns the owned viewport.
func (e *Explorer) Viewport() *Viewport { return e.viewport }

// Config returns the configuration the explorer was built with, with defaults
// applied.
func (e *Explorer) Config() ExplorerConfig { return e.cfg }

// Dispatch handles one event and carries out its effect. Effects that ask for
// an immediate draw are drawn before Dispatch returns.
func (e *Explorer) Dispatch(ev Event) Effect {
	eff := e.viewport.Handle(ev, e.clock.NowMs())
	if eff.Has(EffectDraw) {
		e.Draw()
	}
	if eff.Has(EffectRequestDraw) {
		e.pending = true
	}
	return eff
}

// RequestDraw schedules a draw for the next Step.
func (e *Explorer) RequestDraw() { e.pending = true }

// DrawPending reports whether a draw is scheduled.
func (e *Explorer) DrawPending() bool { return e.pending }

// Step advances one host frame: the attached script runs, one injected event
// is dispatched, the animation ticks, and any scheduled draw happens.
func (e *Explorer) Step() {
	if e.runner != nil {
		e.runner.step(e)
	}
	e.processInjected()
	if e.viewport.Tick(e.clock.NowMs()).Has(EffectDraw) {
		e.Draw()
	}
	if e.pending {
		e.Draw()
	}
}

// Draw builds a frame from the current view and hands it to the sink.
func (e *Explorer) Draw() {
	e.pending = false
	f := e.BuildFrame()
	e.last = f
	if e.sink != nil {
		var stats debugStats
		var t0 time.Time
		if e.cfg.Debug {
			t0 = time.Now()
		}
		e.sink.Render(&e.last)
		if e.cfg.Debug {
			stats.renderTime = time.Since(t0)
			stats.frame = f.Seq
			e.debugLog(stats)
		}
	}
}

// BuildFrame computes the frame for the current view without drawing it.
func (e *Explorer) BuildFrame() Frame {
	var t0 time.Time
	if e.cfg.Debug {
		t0 = time.Now()
	}
	m := e.viewport.Transform()
	x, y := e.viewport.Anchor()
	zoom := e.viewport.ZoomBits()

	prec := e.cfg.Precision
	if prec == 0 {
		prec = WorkingPrecision(zoom)
	}
	hits := e.cache.hits
	orbit := e.cache.Get(x, y, OrbitOptions{
		Depth:     e.cfg.Depth,
		Precision: prec,
		Bailout:   e.cfg.Bailout,
	})

	e.seq++
	nm := NarrowMatrix(m)
	f := Frame{
		Seq:       e.seq,
		Transform: nm,
		ScaleX:    float32(nm[0]),
		ScaleY:    float32(nm[4]),
		ZoomBits:  zoom,
		AnchorX:   x,
		AnchorY:   y,
		Orbit:     orbit,
	}
	if e.cfg.Debug {
		e.debugLog(debugStats{
			frame:     f.Seq,
			orbitTime: time.Since(t0),
			precision: prec,
			cacheHit:  e.cache.hits > hits,
		})
	}
	return f
}

// LastFrame returns the most recently drawn frame, or nil before the first
// draw.
func (e *Explorer) LastFrame() *Frame {
	if e.seq == 0 {
		return nil
	}
	return &e.last
}

// Frames returns the number of frames built so far.
func (e *Explorer) Frames() uint64 { return e.seq }

// SetScript attaches a script runner. Its steps run from Step.
func (e *Explorer) SetScript(s *Script) { e.runner = s }

// Script returns the attached script runner, if any.
func (e *Explorer) Script() *Script { return e.runner }

func (e *Explorer) screenshot(label string) {
	if e.OnScreenshot != nil {
		e.OnScreenshot(label)
		return
	}
	f := e.LastFrame()
	if f == nil {
		Logger().Info("screenshot requested before first frame", "label", label)
		return
	}
	Logger().Info("screenshot",
		"label", label,
		"frame", f.Seq,
		"zoom_bits", f.ZoomBits,
		"anchor_x", f.AnchorX.FloatString(12),
		"anchor_y", f.AnchorY.FloatString(12),
	)
}
