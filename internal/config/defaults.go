package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

//go:embed defaults/wheel.yaml
var defaultWheelYAML []byte

// DefaultPalette is the 20-color palette segments fall back to.
var DefaultPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
	"#F8C471", "#82E0AA", "#F1948A", "#D7BDE2", "#A3E4D7",
	"#F9E79F", "#D5A6BD", "#AED6F1", "#A9DFBF", "#FAD5A5",
}

// DefaultWheelConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed and as the base every file is merged over.
func DefaultWheelConfig() WheelConfig {
	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return WheelConfig{
		Mode: string(wheel.ModeNormal),
		Physics: PhysicsConfig{
			Friction:     0.995,
			MinVelocity:  0.01,
			MinSpinSpeed: 0.3,
			MaxSpinSpeed: 0.7,
			TickRate:     60,
		},
		Limits: LimitsConfig{
			MinSegments:   2,
			MaxSegments:   20,
			MaxTextLength: 50,
		},
		Render: RenderConfig{
			Width:            500,
			Height:           500,
			Margin:           30,
			LightenPercent:   20,
			LabelRadiusRatio: 0.85,
			LabelWidthRatio:  0.7,
			LabelMaxRunes:    15,
			HubRadius:        20,
		},
		Palette: palette,
		Segments: []SegmentConfig{
			{Text: "Pizza"},
			{Text: "Sushi"},
			{Text: "Tacos"},
			{Text: "Burgers"},
			{Text: "Ramen"},
			{Text: "Salad"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWheelYAML
}
