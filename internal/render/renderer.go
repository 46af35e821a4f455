package render

import (
	"math"

	"github.com/vovakirdan/tui-wheel/internal/core"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

// Layout holds the drawing constants. Lengths are surface units.
type Layout struct {
	Margin         float64 // between the wheel rim and the surface edge
	LightenPercent float64 // gradient centre brightening
	SegmentStroke  float64 // white divider width, 0 to skip
	BorderWidth    float64
	HubRadius      float64
	HubStroke      float64
	ShadowOffset   float64
	ShadowAlpha    float64

	PointerGap       float64 // distance from the rim to the pointer tip
	PointerHeight    float64
	PointerHalfWidth float64

	LabelRadius     float64 // label anchor as a fraction of the radius
	LabelWidthRatio float64 // max label width as a fraction of the radius
	LabelMaxRunes   int
	MinFontSize     float64
	MaxFontSize     float64
	FontScale       float64
}

// DefaultLayout is the layout for image output.
func DefaultLayout() Layout {
	return Layout{
		Margin:           30,
		LightenPercent:   20,
		SegmentStroke:    2,
		BorderWidth:      4,
		HubRadius:        20,
		HubStroke:        3,
		ShadowOffset:     5,
		ShadowAlpha:      0.3,
		PointerGap:       5,
		PointerHeight:    20,
		PointerHalfWidth: 15,
		LabelRadius:      0.85,
		LabelWidthRatio:  0.7,
		LabelMaxRunes:    15,
		MinFontSize:      12,
		MaxFontSize:      18,
		FontScale:        0.8,
	}
}

// CompactLayout scales the chrome down for a half-block terminal surface,
// where one unit is one pixel of a character cell.
func CompactLayout() Layout {
	l := DefaultLayout()
	l.Margin = 4
	l.SegmentStroke = 0
	l.BorderWidth = 1
	l.HubRadius = 2
	l.HubStroke = 0
	l.ShadowOffset = 1
	l.PointerGap = 0.5
	l.PointerHeight = 3
	l.PointerHalfWidth = 2
	return l
}

// Arc is one segment's angular extent on the surface.
type Arc struct {
	Index int
	Start float64
	End   float64
	Mid   float64
}

// Contains reports whether the direction a lies within the arc.
func (a Arc) Contains(dir float64) bool {
	return wheel.Normalize(dir-a.Start) < wheel.Normalize(a.End-a.Start) || a.End-a.Start >= wheel.TwoPi
}

// Geometry is the resolved placement of a wheel on a surface.
type Geometry struct {
	Center core.Point
	Radius float64
	Arcs   []Arc
}

// Pointer returns the pointer triangle: tip first, then the two top corners.
func (g Geometry) Pointer(l Layout) [3]core.Point {
	tipY := g.Center.Y - g.Radius - l.PointerGap
	topY := tipY - l.PointerHeight
	return [3]core.Point{
		core.Pt(g.Center.X, tipY),
		core.Pt(g.Center.X-l.PointerHalfWidth, topY),
		core.Pt(g.Center.X+l.PointerHalfWidth, topY),
	}
}

// ArcAt returns the arc containing the direction dir, or -1.
func (g Geometry) ArcAt(dir float64) int {
	for _, a := range g.Arcs {
		if a.Contains(dir) {
			return a.Index
		}
	}
	return -1
}

// Renderer draws wheels. It keeps no state besides its layout.
type Renderer struct {
	layout Layout
}

// NewRenderer creates a renderer with the given layout.
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{layout: layout}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Geometry computes the wheel placement for n segments at angle on a w×h surface.
func (r *Renderer) Geometry(n int, angle, w, h float64) Geometry {
	g := Geometry{
		Center: core.Pt(w/2, h/2),
		Radius: math.Max(math.Min(w, h)/2-r.layout.Margin, 1),
	}
	if n < 1 {
		return g
	}

	step := wheel.AngleStep(n)
	offset := wheel.LayoutOffset(n)
	g.Arcs = make([]Arc, n)
	for i := 0; i < n; i++ {
		start := float64(i)*step + angle + offset
		g.Arcs[i] = Arc{
			Index: i,
			Start: start,
			End:   start + step,
			Mid:   start + step/2,
		}
	}
	return g
}

// FontSize returns the label size for n segments on a wheel of radius radius.
func (r *Renderer) FontSize(radius float64, n int) float64 {
	if n < 1 {
		return r.layout.MaxFontSize
	}
	return core.ClampF(radius/float64(n)*r.layout.FontScale, r.layout.MinFontSize, r.layout.MaxFontSize)
}

// FitLabel shortens text with an ellipsis until it fits maxWidth, keeping at
// most LabelMaxRunes runes of the original.
func (r *Renderer) FitLabel(s Surface, text string, size, maxWidth float64) string {
	if s.MeasureText(text, size) <= maxWidth {
		return text
	}
	runes := []rune(text)
	keep := len(runes)
	if keep > r.layout.LabelMaxRunes {
		keep = r.layout.LabelMaxRunes
	}
	for keep > 1 {
		candidate := string(runes[:keep]) + "..."
		if s.MeasureText(candidate, size) <= maxWidth {
			return candidate
		}
		keep--
	}
	return string(runes[:keep]) + "..."
}

// Draw renders segments rotated by angle. Nothing is drawn for an empty wheel
// beyond clearing the surface.
func (r *Renderer) Draw(s Surface, segments []wheel.Segment, angle float64) Geometry {
	s.Clear()
	w, h := s.Size()
	g := r.Geometry(len(segments), angle, w, h)
	if len(segments) == 0 {
		return g
	}
	l := r.layout

	s.FillCircle(g.Center.Add(core.Pt(l.ShadowOffset, l.ShadowOffset)), g.Radius, Translucent(Black, l.ShadowAlpha))

	fontSize := r.FontSize(g.Radius, len(segments))
	maxLabel := g.Radius * l.LabelWidthRatio

	for _, arc := range g.Arcs {
		seg := segments[arc.Index]
		base := SegmentColor(seg.Color)
		s.FillWedge(g.Center, g.Radius, arc.Start, arc.End, Radial(Lighten(base, l.LightenPercent), base))
		if l.SegmentStroke > 0 {
			s.StrokeWedge(g.Center, g.Radius, arc.Start, arc.End, l.SegmentStroke, White)
		}
	}

	// Labels go on top of every wedge so neighbours cannot cover them.
	for _, arc := range g.Arcs {
		seg := segments[arc.Index]
		label := r.FitLabel(s, seg.Text, fontSize, maxLabel)
		s.DrawLabel(g.Center, arc.Mid, g.Radius*l.LabelRadius, label, fontSize, ContrastColor(seg.Color))
	}

	r.drawChrome(s, g)
	return g
}

func (r *Renderer) drawChrome(s Surface, g Geometry) {
	l := r.layout
	if l.BorderWidth > 0 {
		s.StrokeCircle(g.Center, g.Radius, l.BorderWidth, BorderColor)
	}

	s.FillCircle(g.Center, l.HubRadius, Solid(HubColor))
	if l.HubStroke > 0 {
		s.StrokeCircle(g.Center, l.HubRadius, l.HubStroke, White)
	}

	tri := g.Pointer(l)
	pts := tri[:]
	s.FillPolygon(pts, Vertical(PointerTop, PointerBase))
	s.StrokePolygon(pts, math.Max(l.BorderWidth/2, 1), BorderColor)
}
