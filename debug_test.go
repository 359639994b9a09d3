package deepzoom

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugLogsFrames(t *testing.T) {
	buf := captureLogs(t)
	e := NewExplorer(&recordingSink{}, &ManualClock{}, ExplorerConfig{Depth: 8, Debug: true})
	e.Draw()
	e.Draw()

	out := buf.String()
	for _, want := range []string{"frame built", "frame rendered", "precision_bits=64", "cache_hit=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugOffIsQuiet(t *testing.T) {
	buf := captureLogs(t)
	e := NewExplorer(&recordingSink{}, &ManualClock{}, ExplorerConfig{Depth: 8})
	e.Draw()
	if buf.Len() != 0 {
		t.Errorf("unexpected logs:\n%s", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestViewportLogsIgnoredResize(t *testing.T) {
	buf := captureLogs(t)
	NewViewport().Handle(ResizeEvent{Width: 0, Height: 10}, 0)
	if !strings.Contains(buf.String(), "resize ignored") {
		t.Errorf("log = %q", buf.String())
	}
}
