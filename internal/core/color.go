package core

import "fmt"

// Color represents a cell color for the screen buffer.
// The zero value is the terminal default; any other value carries a 24-bit RGB triple.
type Color uint32

// ColorDefault leaves the terminal's own foreground/background in place.
const ColorDefault Color = 0

const colorSetBit = 1 << 24

// Predefined colors used by the wheel chrome.
var (
	ColorBlack = RGB(0x00, 0x00, 0x00)
	ColorWhite = RGB(0xff, 0xff, 0xff)
	ColorGray  = RGB(0x33, 0x33, 0x33)
	ColorRed   = RGB(0xff, 0x6b, 0x6b)
	ColorGold  = RGB(0xff, 0xd7, 0x00)
)

// RGB packs an 8-bit-per-channel color.
func RGB(r, g, b uint8) Color {
	return Color(colorSetBit | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSetBit == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
