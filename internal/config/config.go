// Package config provides YAML-based wheel configuration: physics constants,
// segment limits, render layout, the default palette and the segment list.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-wheel/internal/render"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// WheelConfig contains all configuration for a wheel.
type WheelConfig struct {
	Mode     string          `yaml:"mode"`
	Physics  PhysicsConfig   `yaml:"physics"`
	Limits   LimitsConfig    `yaml:"limits"`
	Render   RenderConfig    `yaml:"render"`
	Palette  []string        `yaml:"palette"`
	Segments []SegmentConfig `yaml:"segments"`
}

// PhysicsConfig defines the spin constants. Velocities are radians per tick.
type PhysicsConfig struct {
	Friction     float64 `yaml:"friction"`
	MinVelocity  float64 `yaml:"min_velocity"`
	MinSpinSpeed float64 `yaml:"min_spin_speed"`
	MaxSpinSpeed float64 `yaml:"max_spin_speed"`
	TickRate     int     `yaml:"tick_rate"`
}

// LimitsConfig bounds the segment list.
type LimitsConfig struct {
	MinSegments   int `yaml:"min_segments"`
	MaxSegments   int `yaml:"max_segments"`
	MaxTextLength int `yaml:"max_text_length"` // runes
}

// RenderConfig defines image output size and drawing proportions.
type RenderConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	Margin           float64 `yaml:"margin"`
	LightenPercent   float64 `yaml:"lighten_percent"`
	LabelRadiusRatio float64 `yaml:"label_radius_ratio"`
	LabelWidthRatio  float64 `yaml:"label_width_ratio"`
	LabelMaxRunes    int     `yaml:"label_max_runes"`
	HubRadius        float64 `yaml:"hub_radius"`
}

// SegmentConfig is one entry of the segment list. Missing text and colors
// are filled in by BuildSegments.
type SegmentConfig struct {
	Text   string `yaml:"text"`
	Color  string `yaml:"color,omitempty"`
	Active *bool  `yaml:"active,omitempty"` // nil means active
}

// IsActive reports whether the segment takes part in the wheel.
func (s SegmentConfig) IsActive() bool {
	return s.Active == nil || *s.Active
}

// Validate checks every section.
func (c WheelConfig) Validate() error {
	if _, err := wheel.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Physics.Wheel().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Limits.MinSegments < 1 || c.Limits.MaxSegments < c.Limits.MinSegments {
		return fmt.Errorf("%w: segment limits [%d, %d]", ErrInvalidConfig, c.Limits.MinSegments, c.Limits.MaxSegments)
	}
	if c.Limits.MaxTextLength < 1 {
		return fmt.Errorf("%w: max_text_length %d", ErrInvalidConfig, c.Limits.MaxTextLength)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	for i, hex := range c.Palette {
		if !isHexColor(hex) {
			return fmt.Errorf("%w: palette[%d] %q is not #rrggbb", ErrInvalidConfig, i, hex)
		}
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, c.Render.Width, c.Render.Height)
	}
	return nil
}

// WheelMode returns the parsed mode.
func (c WheelConfig) WheelMode() wheel.Mode {
	m, err := wheel.ParseMode(c.Mode)
	if err != nil {
		return wheel.ModeNormal
	}
	return m
}

// Wheel converts to engine physics.
func (p PhysicsConfig) Wheel() wheel.PhysicsConfig {
	return wheel.PhysicsConfig{
		Friction:     p.Friction,
		MinVelocity:  p.MinVelocity,
		MinSpinSpeed: p.MinSpinSpeed,
		MaxSpinSpeed: p.MaxSpinSpeed,
		TickRate:     p.TickRate,
	}
}

// Layout applies the configured proportions to the image layout.
// Zero values keep the built-in defaults.
func (r RenderConfig) Layout() render.Layout {
	l := r.apply(render.DefaultLayout())
	if r.Margin > 0 {
		l.Margin = r.Margin
	}
	if r.HubRadius > 0 {
		l.HubRadius = r.HubRadius
	}
	return l
}

// CompactLayout applies the configured proportions to the terminal layout.
// Absolute sizes (margin, hub) stay at the terminal defaults.
func (r RenderConfig) CompactLayout() render.Layout {
	return r.apply(render.CompactLayout())
}

func (r RenderConfig) apply(l render.Layout) render.Layout {
	if r.LightenPercent != 0 {
		l.LightenPercent = r.LightenPercent
	}
	if r.LabelRadiusRatio > 0 {
		l.LabelRadius = r.LabelRadiusRatio
	}
	if r.LabelWidthRatio > 0 {
		l.LabelWidthRatio = r.LabelWidthRatio
	}
	if r.LabelMaxRunes > 0 {
		l.LabelMaxRunes = r.LabelMaxRunes
	}
	return l
}
