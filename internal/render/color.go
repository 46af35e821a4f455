package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-wheel/internal/core"
)

// Chrome colors. None of them rotate with the wheel.
var (
	White        = colorful.Color{R: 1, G: 1, B: 1}
	Black        = colorful.Color{}
	BorderColor  = mustHex("#333333")
	HubColor     = mustHex("#333333")
	PointerTop   = mustHex("#ff6b6b")
	PointerBase  = mustHex("#ff5252")
	FallbackFill = mustHex("#cccccc")

	// Background is what opaque surfaces clear to.
	Background = mustHex("#1a1a2e")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses "#rrggbb" (or "#rgb").
func ParseColor(hex string) (colorful.Color, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// SegmentColor returns the fill for a segment, or FallbackFill when the
// color does not parse.
func SegmentColor(hex string) colorful.Color {
	if c, ok := ParseColor(hex); ok {
		return c
	}
	return FallbackFill
}

// Lighten adds round(2.55*percent) to every 8-bit channel, clamped to 0..255.
// Negative percentages darken.
func Lighten(c colorful.Color, percent float64) colorful.Color {
	amt := int(math.Round(2.55 * percent))
	r, g, b := c.RGB255()
	return colorful.Color{
		R: float64(clamp8(int(r)+amt)) / 255,
		G: float64(clamp8(int(g)+amt)) / 255,
		B: float64(clamp8(int(b)+amt)) / 255,
	}
}

func clamp8(v int) int {
	return core.Clamp(v, 0, 255)
}

// Luminance is the perceived brightness of c in [0, 1].
func Luminance(c colorful.Color) float64 {
	r, g, b := c.RGB255()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

// ContrastColor picks black text for light backgrounds and white otherwise.
// Unparseable colors get white.
func ContrastColor(hex string) colorful.Color {
	c, ok := ParseColor(hex)
	if !ok {
		return White
	}
	if Luminance(c) > 0.5 {
		return Black
	}
	return White
}

// ToCore converts to a screen cell color.
func ToCore(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.RGB(r, g, b)
}
