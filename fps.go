package deepzoom

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudDigits is how many decimal digits of the anchor the HUD shows.
const hudDigits = 16

// hud draws FPS/TPS, zoom depth and the anchor in the top-left corner. The
// text is rebuilt only when the frame or the half-second FPS sample changes.
type hud struct {
	text      string
	frameSeq  uint64
	sinceTick float64
	fps, tps  float64
}

// update refreshes the cached text. dt is seconds since the previous call.
func (h *hud) update(dt float64, f *Frame) {
	h.sinceTick += dt
	resample := h.sinceTick >= 0.5 || h.text == ""
	if resample {
		h.sinceTick = 0
		h.fps = ebiten.ActualFPS()
		h.tps = ebiten.ActualTPS()
	}
	if f == nil || (!resample && f.Seq == h.frameSeq) {
		return
	}
	h.frameSeq = f.Seq
	h.text = hudText(h.fps, h.tps, f)
}

func hudText(fps, tps float64, f *Frame) string {
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\nzoom: 2^%d\nre: %s\nim: %s",
		fps, tps, f.ZoomBits,
		f.AnchorX.FloatString(hudDigits),
		f.AnchorY.FloatString(hudDigits),
	)
}

func (h *hud) draw(screen *ebiten.Image) {
	if h.text == "" {
		return
	}
	ebitenutil.DebugPrint(screen, h.text)
}
