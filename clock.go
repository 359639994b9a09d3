package deepzoom

import "time"

// Clock supplies the current time in milliseconds. Only differences between
// readings are meaningful.
type Clock interface {
	NowMs() float64
}

// SystemClock reads the monotonic wall clock, relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock that reads 0 now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) NowMs() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock only moves when told to. Headless runs and tests use it to make
// frame deltas deterministic.
type ManualClock struct {
	ms float64
}

func (c *ManualClock) NowMs() float64 { return c.ms }

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms float64) { c.ms += ms }

// Set moves the clock to ms.
func (c *ManualClock) Set(ms float64) { c.ms = ms }
