package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phanxgames/deepzoom"
	"github.com/phanxgames/deepzoom/internal/config"
)

func main() {
	headless := flag.Bool("headless", false, "run without a window")
	scriptPath := flag.String("script", "", "JSON script to replay")
	ticks := flag.Uint64("ticks", 0, "headless: stop after this many frames (0 = until the script ends)")
	hz := flag.Int("hz", 60, "headless: frame rate")
	fast := flag.Bool("fast", false, "headless: run frames back to back")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	deepzoom.SetLogger(logger)

	var script *deepzoom.Script
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			slog.Error("read script", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
		script, err = deepzoom.LoadScript(data)
		if err != nil {
			slog.Error("load script", "path", *scriptPath, "error", err)
			os.Exit(1)
		}
	}

	ecfg := deepzoom.ExplorerConfig{
		Depth:         cfg.Depth,
		Precision:     cfg.PrecisionBits,
		ResetDuration: cfg.ResetDuration(),
		Debug:         level <= slog.LevelDebug,
	}

	if *headless {
		if script == nil && *ticks == 0 {
			slog.Error("headless mode needs -script or -ticks")
			os.Exit(2)
		}
		runHeadless(cfg, ecfg, script, deepzoom.HeadlessConfig{Hz: *hz, Ticks: *ticks, Unpaced: *fast})
		return
	}

	err = deepzoom.Run(deepzoom.RunConfig{
		Title:           cfg.Title,
		Width:           cfg.Width,
		Height:          cfg.Height,
		TPS:             cfg.TPS,
		ShowHUD:         cfg.ShowHUD,
		ScreenshotDir:   cfg.ScreenshotDir,
		WheelLinePixels: cfg.WheelLinePixels,
		Explorer:        ecfg,
		Script:          script,
	})
	if err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}

func runHeadless(cfg *config.Config, ecfg deepzoom.ExplorerConfig, script *deepzoom.Script, hcfg deepzoom.HeadlessConfig) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := deepzoom.FrameSinkFunc(func(f *deepzoom.Frame) {
		slog.Debug("frame", "seq", f.Seq, "zoom_bits", f.ZoomBits, "scale_x", f.ScaleX, "scale_y", f.ScaleY)
	})
	clock := &deepzoom.ManualClock{}
	e := deepzoom.NewExplorer(sink, clock, ecfg)
	if script != nil {
		e.SetScript(script)
	}
	e.Dispatch(deepzoom.ResizeEvent{Width: cfg.Width, Height: cfg.Height})

	if err := deepzoom.RunHeadless(ctx, e, clock, hcfg); err != nil {
		slog.Error("headless run", "error", err)
		os.Exit(1)
	}

	f := e.LastFrame()
	if f == nil {
		return
	}
	lastRe, lastIm := float32(0), float32(0)
	if n := f.Orbit.Len(); n > 0 {
		lastRe, lastIm = f.Orbit.Re[n-1], f.Orbit.Im[n-1]
	}
	slog.Info("final view",
		"frames", e.Frames(),
		"transform", e.Viewport().Transform().String(),
		"zoom_bits", f.ZoomBits,
		"anchor_x", f.AnchorX.FloatString(20),
		"anchor_y", f.AnchorY.FloatString(20),
		"orbit_depth", f.Orbit.Len(),
		"orbit_last_re", lastRe,
		"orbit_last_im", lastIm,
	)
}
