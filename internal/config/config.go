package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. DEEPZOOM_DEPTH.
const Prefix = "DEEPZOOM"

type Config struct {
	Depth           int     `envconfig:"DEPTH" default:"500"`
	Width           int     `envconfig:"WIDTH" default:"960"`
	Height          int     `envconfig:"HEIGHT" default:"640"`
	Title           string  `envconfig:"TITLE" default:"deepzoom"`
	TPS             int     `envconfig:"TPS" default:"60"`
	PrecisionBits   uint    `envconfig:"PRECISION_BITS" default:"0"`
	WheelLinePixels float64 `envconfig:"WHEEL_LINE_PIXELS" default:"100"`
	ResetMs         int     `envconfig:"RESET_MS" default:"600"`
	ScreenshotDir   string  `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
	ShowHUD         bool    `envconfig:"SHOW_HUD" default:"true"`
	LogLevel        string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects sizes and rates that cannot drive a viewer.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"DEPTH", float64(c.Depth)},
		{"WIDTH", float64(c.Width)},
		{"HEIGHT", float64(c.Height)},
		{"TPS", float64(c.TPS)},
		{"WHEEL_LINE_PIXELS", c.WheelLinePixels},
		{"RESET_MS", float64(c.ResetMs)},
	}
	for _, ch := range checks {
		if ch.v <= 0 {
			return fmt.Errorf("config: %s_%s must be positive, got %v", Prefix, ch.name, ch.v)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: %s_LOG_LEVEL: %w", Prefix, err)
	}
	return l, nil
}

func (c *Config) ResetDuration() time.Duration {
	return time.Duration(c.ResetMs) * time.Millisecond
}
