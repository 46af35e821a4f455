// Package wheel implements the spinning-wheel engine: segment geometry,
// velocity-decay spin physics, winner resolution and the elimination
// tournament. It has no rendering or terminal dependencies; the platform
// drives it frame by frame and draws it through the render package.
package wheel

import (
	"fmt"
	"strings"
)

// Segment is one wedge of the wheel.
// Identity is positional; Text and Color never change after creation.
type Segment struct {
	Text     string
	Color    string // "#rrggbb"; anything else renders with a fallback color
	Inactive bool   // excluded from the wheel at construction
}

// ActiveSegments returns the active segments in their original order.
func ActiveSegments(segments []Segment) []Segment {
	active := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if s.Inactive {
			continue
		}
		active = append(active, s)
	}
	return active
}

// Mode selects how stop events are interpreted.
type Mode string

const (
	// ModeNormal reports the landed segment as the winner; the wheel never changes.
	ModeNormal Mode = "normal"
	// ModeElimination removes the landed segment each round until one champion remains.
	ModeElimination Mode = "elimination"
)

// ParseMode converts a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNormal, "":
		return ModeNormal, nil
	case ModeElimination:
		return ModeElimination, nil
	default:
		return "", fmt.Errorf("%w %q (want %q or %q)", ErrInvalidMode, s, ModeNormal, ModeElimination)
	}
}

// MinSegments returns the smallest active segment count the mode can play with.
func (m Mode) MinSegments() int {
	if m == ModeElimination {
		return 2
	}
	return 1
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}
