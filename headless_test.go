package deepzoom

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessTicks(t *testing.T) {
	e, _, clock := newTestExplorer(t)
	err := RunHeadless(context.Background(), e, clock, HeadlessConfig{Hz: 50, Ticks: 10, Unpaced: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := clock.NowMs(); got != 200 {
		t.Errorf("clock = %v ms, want 200", got)
	}
}

func TestRunHeadlessStopsWithScript(t *testing.T) {
	e, _, clock := newTestExplorer(t)
	e.SetScript(mustScript(t, `{"steps": [
		{"action": "key_down", "key": "ArrowRight"},
		{"action": "wait", "frames": 5},
		{"action": "key_up", "key": "ArrowRight"}
	]}`))
	err := RunHeadless(context.Background(), e, clock, HeadlessConfig{Hz: 20, Unpaced: true})
	if err != nil {
		t.Fatal(err)
	}
	if !e.Script().Done() {
		t.Error("script not finished")
	}
	x, _ := e.Viewport().Anchor()
	if x.Sign() <= 0 {
		t.Errorf("anchor x = %v, want positive after panning right", x)
	}
}

func TestRunHeadlessContextCancel(t *testing.T) {
	e, _, clock := newTestExplorer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, e, clock, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	c.Advance(16.5)
	c.Advance(0.5)
	if c.NowMs() != 17 {
		t.Errorf("NowMs = %v", c.NowMs())
	}
	c.Set(3)
	if c.NowMs() != 3 {
		t.Errorf("NowMs after Set = %v", c.NowMs())
	}
}
