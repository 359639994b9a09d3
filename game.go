package deepzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the update rate. Zero keeps ebiten's default of 60.
	TPS int
	// ShowHUD draws FPS, zoom depth and the anchor over the fractal.
	ShowHUD bool
	// ScreenshotDir receives script screenshots. Empty means "screenshots".
	ScreenshotDir string
	// WheelLinePixels converts wheel notches into pixel deltas. Zero means
	// DefaultWheelLinePixels.
	WheelLinePixels float64
	Explorer        ExplorerConfig
	// Script, if set, is replayed from the first frame.
	Script *Script
}

// Game implements ebiten.Game around an Explorer: Update feeds it polled
// input, Draw blits the shader output.
type Game struct {
	// ShowHUD draws the text overlay.
	ShowHUD bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	explorer *Explorer
	renderer *ShaderRenderer
	input    *inputSource
	hud      hud
	clock    Clock

	// hudLastMs is the clock reading of the previous HUD refresh, valid once
	// hudStarted is set.
	hudLastMs  float64
	hudStarted bool

	width, height   int
	reportedW       int
	reportedH       int
	screenshotQueue []string
}

// NewGame creates a game for cfg. Use it instead of Run to embed the viewer in
// a custom ebiten loop.
func NewGame(cfg RunConfig) *Game {
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	r := NewShaderRenderer(cfg.Explorer.Depth)
	clock := NewSystemClock()
	g := &Game{
		ShowHUD:       cfg.ShowHUD,
		ScreenshotDir: dir,
		renderer:      r,
		clock:         clock,
		input:         newInputSource(cfg.WheelLinePixels),
		width:         cfg.Width,
		height:        cfg.Height,
	}
	g.explorer = NewExplorer(r, clock, cfg.Explorer)
	g.explorer.OnScreenshot = g.Screenshot
	if cfg.Script != nil {
		g.explorer.SetScript(cfg.Script)
	}
	return g
}

// Explorer returns the driven explorer.
func (g *Game) Explorer() *Explorer { return g.explorer }

func (g *Game) surface() Rect {
	return Rect{Width: float64(g.width), Height: float64(g.height)}
}

// Update reports size changes, dispatches polled input and steps the
// explorer.
func (g *Game) Update() error {
	if g.width != g.reportedW || g.height != g.reportedH {
		g.reportedW, g.reportedH = g.width, g.height
		g.explorer.Dispatch(ResizeEvent{Width: g.width, Height: g.height})
	}
	for _, ev := range g.input.poll(g.surface()) {
		g.explorer.Dispatch(ev)
	}
	g.explorer.Step()
	if g.ShowHUD {
		g.hud.update(g.hudDelta(), g.explorer.LastFrame())
	}
	return nil
}

// hudDelta returns the wall-clock seconds since the previous call. The first
// call and a clock that went backwards yield 0. ebiten.TPS cannot be used
// here since it is negative under SyncWithFPS.
func (g *Game) hudDelta() float64 {
	now := g.clock.NowMs()
	if !g.hudStarted {
		g.hudStarted = true
		g.hudLastMs = now
		return 0
	}
	dt := (now - g.hudLastMs) / 1000
	g.hudLastMs = now
	return max(0, dt)
}

// Draw renders the last frame, the HUD and any queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Blit(screen)
	g.flushScreenshots(screen)
	if g.ShowHUD {
		g.hud.draw(screen)
	}
}

// Layout renders at the window's full size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and blocks until it closes.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 960, 640
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	Logger().Info("window starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return ebiten.RunGame(NewGame(cfg))
}
