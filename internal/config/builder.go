package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

// ErrSegmentCount is returned when the requested count is outside the limits.
var ErrSegmentCount = errors.New("config: segment count out of range")

// BuildSegments turns raw entries into wheel segments.
//
// count selects how many segments the wheel gets; 0 means len(entries).
// Extra entries are ignored and missing ones are filled with placeholders.
// Text is cleaned and truncated to MaxTextLength runes, empty text becomes
// "Option N", and a color that is not #rrggbb takes the palette color for
// its position.
func (c WheelConfig) BuildSegments(entries []SegmentConfig, count int) ([]wheel.Segment, error) {
	if count == 0 {
		count = len(entries)
	}
	if count < c.Limits.MinSegments || count > c.Limits.MaxSegments {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrSegmentCount, count, c.Limits.MinSegments, c.Limits.MaxSegments)
	}

	segments := make([]wheel.Segment, count)
	for i := range segments {
		var e SegmentConfig
		if i < len(entries) {
			e = entries[i]
		}

		text := CleanText(e.Text)
		if text == "" {
			text = fmt.Sprintf("Option %d", i+1)
		}
		if r := []rune(text); len(r) > c.Limits.MaxTextLength {
			text = strings.TrimSpace(string(r[:c.Limits.MaxTextLength]))
		}

		color := e.Color
		if !isHexColor(color) {
			color = c.paletteColor(i)
		}

		segments[i] = wheel.Segment{
			Text:     text,
			Color:    color,
			Inactive: !e.IsActive(),
		}
	}
	return segments, nil
}

// ConfiguredSegments builds the segments listed in the configuration.
func (c WheelConfig) ConfiguredSegments() ([]wheel.Segment, error) {
	return c.BuildSegments(c.Segments, 0)
}

func (c WheelConfig) paletteColor(i int) string {
	if len(c.Palette) == 0 {
		return DefaultPalette[i%len(DefaultPalette)]
	}
	return c.Palette[i%len(c.Palette)]
}

// CleanText strips terminal escape sequences and control characters and
// trims surrounding space.
func CleanText(s string) string {
	s = ansi.Strip(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// ParseSegmentFlag parses "text" or "text:#rrggbb".
func ParseSegmentFlag(s string) SegmentConfig {
	if i := strings.LastIndex(s, ":"); i >= 0 && strings.HasPrefix(s[i+1:], "#") {
		return SegmentConfig{Text: s[:i], Color: s[i+1:]}
	}
	return SegmentConfig{Text: s}
}

// isHexColor reports whether s is exactly "#rrggbb".
func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !unicode.Is(unicode.ASCII_Hex_Digit, r) {
			return false
		}
	}
	return true
}
