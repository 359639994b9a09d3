package deepzoom

import (
	"time"
)

// debugStats holds per-frame timings. Only populated when
// ExplorerConfig.Debug is set.
type debugStats struct {
	frame      uint64
	orbitTime  time.Duration
	renderTime time.Duration
	precision  uint
	cacheHit   bool
}

// debugLog writes the non-zero parts of stats at debug level.
func (e *Explorer) debugLog(stats debugStats) {
	if !e.cfg.Debug {
		return
	}
	if stats.renderTime > 0 {
		Logger().Debug("frame rendered", "frame", stats.frame, "render", stats.renderTime)
		return
	}
	Logger().Debug("frame built",
		"frame", stats.frame,
		"orbit", stats.orbitTime,
		"precision_bits", stats.precision,
		"cache_hit", stats.cacheHit,
	)
}
