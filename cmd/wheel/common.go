package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wheel/internal/config"
	"github.com/vovakirdan/tui-wheel/internal/core"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

// newLogger returns the stderr logger shared by every command.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// runtimeConfig collects the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig reads the wheel config and applies the --mode flag.
func loadConfig(logger *log.Logger) (config.WheelConfig, error) {
	cfg, source, err := config.LoadWheelSource(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	if flagMode != "" {
		if _, err := wheel.ParseMode(flagMode); err != nil {
			return cfg, err
		}
		cfg.Mode = flagMode
	}
	return cfg, nil
}

// segments builds the segment list from --segment flags, or from the
// config when none were given.
func segments(cfg config.WheelConfig) ([]wheel.Segment, error) {
	entries := cfg.Segments
	if len(flagSegments) > 0 {
		entries = make([]config.SegmentConfig, len(flagSegments))
		for i, s := range flagSegments {
			entries[i] = config.ParseSegmentFlag(s)
		}
	}
	return cfg.BuildSegments(entries, flagCount)
}

// wheelFactory returns a constructor for wheels configured from flags.
// Each call yields an independent wheel; seeded runs share the seed.
func wheelFactory(cfg config.WheelConfig, rt core.RuntimeConfig, logger *log.Logger) func() (*wheel.Wheel, error) {
	return func() (*wheel.Wheel, error) {
		segs, err := segments(cfg)
		if err != nil {
			return nil, err
		}

		opts := []wheel.Option{
			wheel.WithPhysics(cfg.Physics.Wheel()),
			wheel.WithLogger(logger),
		}
		if rt.Seed != 0 {
			opts = append(opts, wheel.WithSeed(rt.Seed))
		}

		w, err := wheel.New(segs, cfg.WheelMode(), opts...)
		if err != nil {
			return nil, fmt.Errorf("cannot create wheel: %w", err)
		}
		return w, nil
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
