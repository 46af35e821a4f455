package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

func TestDefaultWheelConfigMatchesEmbedded(t *testing.T) {
	var embedded WheelConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	def := DefaultWheelConfig()

	if embedded.Physics != def.Physics {
		t.Errorf("physics: embedded %+v, builtin %+v", embedded.Physics, def.Physics)
	}
	if embedded.Limits != def.Limits {
		t.Errorf("limits: embedded %+v, builtin %+v", embedded.Limits, def.Limits)
	}
	if embedded.Render != def.Render {
		t.Errorf("render: embedded %+v, builtin %+v", embedded.Render, def.Render)
	}
	if strings.Join(embedded.Palette, ",") != strings.Join(def.Palette, ",") {
		t.Error("palette differs between embedded and builtin")
	}
	if len(embedded.Palette) != 20 {
		t.Errorf("palette has %d colors, want 20", len(embedded.Palette))
	}
	if err := def.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WheelConfig)
	}{
		{"bad mode", func(c *WheelConfig) { c.Mode = "roulette" }},
		{"friction", func(c *WheelConfig) { c.Physics.Friction = 1 }},
		{"limits", func(c *WheelConfig) { c.Limits.MaxSegments = 1 }},
		{"text length", func(c *WheelConfig) { c.Limits.MaxTextLength = 0 }},
		{"empty palette", func(c *WheelConfig) { c.Palette = nil }},
		{"palette entry", func(c *WheelConfig) { c.Palette[3] = "blue" }},
		{"render size", func(c *WheelConfig) { c.Render.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWheelConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateWrapsEngineErrors(t *testing.T) {
	cfg := DefaultWheelConfig()
	cfg.Physics.TickRate = 0
	if err := cfg.Validate(); !errors.Is(err, wheel.ErrInvalidPhysics) {
		t.Errorf("Validate() = %v, want wheel.ErrInvalidPhysics in chain", err)
	}
}

func TestPhysicsConversion(t *testing.T) {
	if got := DefaultWheelConfig().Physics.Wheel(); got != wheel.DefaultPhysics() {
		t.Errorf("Wheel() = %+v, want %+v", got, wheel.DefaultPhysics())
	}
}

func TestRenderLayout(t *testing.T) {
	r := DefaultWheelConfig().Render
	r.Margin = 12
	r.LabelMaxRunes = 8

	l := r.Layout()
	if l.Margin != 12 || l.LabelMaxRunes != 8 || l.HubRadius != 20 {
		t.Errorf("Layout() = %+v", l)
	}

	compact := r.CompactLayout()
	if compact.Margin == 12 {
		t.Error("CompactLayout took the image margin")
	}
	if compact.LabelMaxRunes != 8 {
		t.Errorf("CompactLayout label runes = %d, want 8", compact.LabelMaxRunes)
	}
}

func TestWheelMode(t *testing.T) {
	cfg := DefaultWheelConfig()
	cfg.Mode = "Elimination"
	if cfg.WheelMode() != wheel.ModeElimination {
		t.Errorf("WheelMode() = %v", cfg.WheelMode())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWheelPrecedence(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Nothing on disk: embedded default.
	cfg, src, err := LoadWheelSource("")
	if err != nil || src != SourceEmbedded {
		t.Fatalf("LoadWheelSource() = %q, %v; want embedded", src, err)
	}
	if len(cfg.Segments) != 6 {
		t.Errorf("embedded segments = %d", len(cfg.Segments))
	}

	// Local file beats embedded.
	writeFile(t, filepath.Join(work, "configs", "wheel.yaml"), "mode: elimination\n")
	cfg, src, err = LoadWheelSource("")
	if err != nil || src != SourceLocal || cfg.Mode != "elimination" {
		t.Fatalf("local: src=%q mode=%q err=%v", src, cfg.Mode, err)
	}
	if cfg.Physics.Friction != 0.995 {
		t.Errorf("partial file lost default friction: %v", cfg.Physics.Friction)
	}

	// User file beats local.
	writeFile(t, filepath.Join(home, ".wheel", "configs", "wheel.yaml"), "physics:\n  friction: 0.99\n")
	cfg, src, err = LoadWheelSource("")
	if err != nil || src != SourceUser || cfg.Physics.Friction != 0.99 {
		t.Fatalf("user: src=%q friction=%v err=%v", src, cfg.Physics.Friction, err)
	}

	// Custom path beats everything.
	custom := filepath.Join(work, "mine.yaml")
	writeFile(t, custom, "segments:\n  - text: One\n  - text: Two\n    color: \"#000000\"\n")
	cfg, src, err = LoadWheelSource(custom)
	if err != nil || src != SourceCustom || len(cfg.Segments) != 2 {
		t.Fatalf("custom: src=%q segments=%d err=%v", src, len(cfg.Segments), err)
	}
}

func TestLoadWheelSkipsInvalidFiles(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	writeFile(t, filepath.Join(home, ".wheel", "configs", "wheel.yaml"), "physics: [not, a, map]\n")
	writeFile(t, filepath.Join(work, "configs", "wheel.yaml"), "physics:\n  friction: 2\n")

	_, src, err := LoadWheelSource("")
	if err != nil || src != SourceEmbedded {
		t.Errorf("LoadWheelSource() = %q, %v; want embedded fallback", src, err)
	}
}

func TestLoadWheelCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadWheel(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "mode: [\n")
	if _, err := LoadWheel(bad); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("bad yaml error = %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "limits:\n  min_segments: 0\n")
	if _, err := LoadWheel(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config error = %v", err)
	}
}

func TestSaveWheelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wheel.yaml")
	cfg := DefaultWheelConfig()
	cfg.Mode = "elimination"
	off := false
	cfg.Segments = []SegmentConfig{{Text: "a"}, {Text: "b", Color: "#123456", Active: &off}}

	if err := SaveWheel(path, cfg); err != nil {
		t.Fatalf("SaveWheel: %v", err)
	}
	got, err := LoadWheel(path)
	if err != nil {
		t.Fatalf("LoadWheel: %v", err)
	}
	if got.Mode != "elimination" || len(got.Segments) != 2 || got.Segments[1].IsActive() {
		t.Errorf("round trip = %+v", got)
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
