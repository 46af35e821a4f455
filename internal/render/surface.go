// Package render draws a wheel onto a Surface. The renderer owns the layout
// math; surfaces only know how to fill and stroke primitives. ImageSurface
// produces PNGs and CellSurface rasterises into a terminal screen.
package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-wheel/internal/core"
)

// Gradient selects how a Paint varies across a shape.
type Gradient int

const (
	GradientNone     Gradient = iota
	GradientRadial            // From at the shape's centre, To at its radius
	GradientVertical          // From at the top edge, To at the bottom edge
)

// Paint describes a fill.
type Paint struct {
	From     colorful.Color
	To       colorful.Color
	Gradient Gradient
	Alpha    float64 // 1 is opaque
}

// Solid returns an opaque single-color paint.
func Solid(c colorful.Color) Paint {
	return Paint{From: c, To: c, Alpha: 1}
}

// Radial returns an opaque centre-to-rim gradient.
func Radial(from, to colorful.Color) Paint {
	return Paint{From: from, To: to, Gradient: GradientRadial, Alpha: 1}
}

// Vertical returns an opaque top-to-bottom gradient.
func Vertical(from, to colorful.Color) Paint {
	return Paint{From: from, To: to, Gradient: GradientVertical, Alpha: 1}
}

// Translucent returns a single-color paint with the given opacity.
func Translucent(c colorful.Color, alpha float64) Paint {
	return Paint{From: c, To: c, Alpha: alpha}
}

// At samples the paint at t in [0, 1] along its gradient.
func (p Paint) At(t float64) colorful.Color {
	if p.Gradient == GradientNone {
		return p.From
	}
	return p.From.BlendRgb(p.To, core.ClampF(t, 0, 1))
}

// Surface is a drawing target. Angles are radians measured clockwise from
// the +x axis (y grows downwards); lengths are in surface units.
type Surface interface {
	Size() (w, h float64)
	Clear()

	FillCircle(c core.Point, r float64, p Paint)
	StrokeCircle(c core.Point, r, width float64, col colorful.Color)

	// FillWedge fills the pie slice from start to end.
	FillWedge(c core.Point, r, start, end float64, p Paint)
	StrokeWedge(c core.Point, r, start, end, width float64, col colorful.Color)

	FillPolygon(pts []core.Point, p Paint)
	StrokePolygon(pts []core.Point, width float64, col colorful.Color)

	// MeasureText returns the advance width of text at the given font size.
	MeasureText(text string, size float64) float64
	// DrawLabel draws text along the ray at angle from c, right-aligned at dist.
	DrawLabel(c core.Point, angle, dist float64, text string, size float64, col colorful.Color)
}
