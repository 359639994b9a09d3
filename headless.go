package deepzoom

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls RunHeadless.
type HeadlessConfig struct {
	// Hz is the frame rate; the manual clock advances 1000/Hz ms per frame.
	Hz int
	// Ticks stops the run after this many frames. Zero runs until the
	// attached script finishes, or forever without one.
	Ticks uint64
	// Unpaced runs frames back to back instead of on a real-time ticker.
	Unpaced bool
}

// RunHeadless drives e without a window: each frame advances clock and calls
// Step. It returns nil when Ticks frames have run or the script is done, and
// ctx.Err() if ctx ends first.
func RunHeadless(ctx context.Context, e *Explorer, clock *ManualClock, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	frameMs := 1000 / float64(cfg.Hz)

	var tc <-chan time.Time
	if !cfg.Unpaced {
		t := time.NewTicker(d)
		defer t.Stop()
		tc = t.C
	}

	var tick uint64
	for {
		if tc != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tc:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		clock.Advance(frameMs)
		e.Step()
		tick++

		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
		if s := e.Script(); cfg.Ticks == 0 && s != nil && s.Done() {
			Logger().Info("script finished", "frames", tick)
			return nil
		}
	}
}
