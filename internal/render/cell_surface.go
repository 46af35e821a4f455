package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-wheel/internal/core"
	"github.com/vovakirdan/tui-wheel/internal/wheel"
)

// Half-block glyphs: the foreground paints one half of the cell and the
// background the other.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

type cellLabel struct {
	x, y int // cell coordinates
	text string
	fg   colorful.Color
}

// CellSurface rasterises onto a pixel grid two pixels tall per character
// cell, then flushes to a core.Screen using half-block glyphs. Labels are
// kept as text and laid over the pixels horizontally; a terminal cannot
// rotate glyphs.
type CellSurface struct {
	cols, rows int
	pix        []colorful.Color
	set        []bool
	labels     []cellLabel
}

// NewCellSurface creates a surface covering cols×rows cells.
func NewCellSurface(cols, rows int) *CellSurface {
	s := &CellSurface{}
	s.Resize(cols, rows)
	return s
}

// Resize changes the cell dimensions and clears the surface.
func (s *CellSurface) Resize(cols, rows int) {
	s.cols = max(cols, 0)
	s.rows = max(rows, 0)
	n := s.cols * s.rows * 2
	s.pix = make([]colorful.Color, n)
	s.set = make([]bool, n)
	s.labels = s.labels[:0]
}

// Cells returns the dimensions in character cells.
func (s *CellSurface) Cells() (cols, rows int) {
	return s.cols, s.rows
}

// Size returns the pixel grid dimensions.
func (s *CellSurface) Size() (w, h float64) {
	return float64(s.cols), float64(s.rows * 2)
}

// Clear unsets every pixel and drops labels.
func (s *CellSurface) Clear() {
	clear(s.set)
	s.labels = s.labels[:0]
}

// Pixel returns the color at pixel (x, y) and whether anything was drawn there.
func (s *CellSurface) Pixel(x, y int) (colorful.Color, bool) {
	if x < 0 || x >= s.cols || y < 0 || y >= s.rows*2 {
		return colorful.Color{}, false
	}
	i := y*s.cols + x
	return s.pix[i], s.set[i]
}

func (s *CellSurface) plot(x, y int, col colorful.Color, alpha float64) {
	i := y*s.cols + x
	if alpha >= 1 {
		s.pix[i] = col
		s.set[i] = true
		return
	}
	base := Background
	if s.set[i] {
		base = s.pix[i]
	}
	s.pix[i] = base.BlendRgb(col, alpha)
	s.set[i] = true
}

// each calls fn with the centre of every pixel inside the bounding box.
func (s *CellSurface) each(minX, minY, maxX, maxY float64, fn func(x, y int, p core.Point)) {
	x0 := core.Clamp(int(math.Floor(minX)), 0, s.cols)
	x1 := core.Clamp(int(math.Ceil(maxX)), 0, s.cols)
	y0 := core.Clamp(int(math.Floor(minY)), 0, s.rows*2)
	y1 := core.Clamp(int(math.Ceil(maxY)), 0, s.rows*2)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			fn(x, y, core.Pt(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

// FillCircle fills a disc.
func (s *CellSurface) FillCircle(c core.Point, r float64, p Paint) {
	s.each(c.X-r, c.Y-r, c.X+r, c.Y+r, func(x, y int, pt core.Point) {
		if d := c.Dist(pt); d <= r {
			s.plot(x, y, p.At(d/r), p.Alpha)
		}
	})
}

// StrokeCircle draws a ring.
func (s *CellSurface) StrokeCircle(c core.Point, r, width float64, col colorful.Color) {
	half := math.Max(width/2, 0.5)
	s.each(c.X-r-half, c.Y-r-half, c.X+r+half, c.Y+r+half, func(x, y int, pt core.Point) {
		if math.Abs(c.Dist(pt)-r) <= half {
			s.plot(x, y, col, 1)
		}
	})
}

func inWedge(c, pt core.Point, start, end float64) bool {
	span := end - start
	if span >= wheel.TwoPi {
		return true
	}
	dir := math.Atan2(pt.Y-c.Y, pt.X-c.X)
	return wheel.Normalize(dir-start) < wheel.Normalize(span)
}

// FillWedge fills a pie slice.
func (s *CellSurface) FillWedge(c core.Point, r, start, end float64, p Paint) {
	s.each(c.X-r, c.Y-r, c.X+r, c.Y+r, func(x, y int, pt core.Point) {
		d := c.Dist(pt)
		if d <= r && inWedge(c, pt, start, end) {
			s.plot(x, y, p.At(d/r), p.Alpha)
		}
	})
}

// StrokeWedge draws the two radial edges of a slice.
func (s *CellSurface) StrokeWedge(c core.Point, r, start, end, width float64, col colorful.Color) {
	s.strokeLine(c, c.Polar(start, r), width, col)
	s.strokeLine(c, c.Polar(end, r), width, col)
}

func (s *CellSurface) strokeLine(a, b core.Point, width float64, col colorful.Color) {
	half := math.Max(width/2, 0.5)
	s.each(min(a.X, b.X)-half, min(a.Y, b.Y)-half, max(a.X, b.X)+half, max(a.Y, b.Y)+half, func(x, y int, pt core.Point) {
		if segmentDist(pt, a, b) <= half {
			s.plot(x, y, col, 1)
		}
	})
}

func segmentDist(p, a, b core.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return p.Dist(a)
	}
	t := core.ClampF(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/l2, 0, 1)
	return p.Dist(core.Pt(a.X+t*dx, a.Y+t*dy))
}

func inPolygon(pt core.Point, pts []core.Point) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) && pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func bounds(pts []core.Point) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// FillPolygon fills a closed polygon.
func (s *CellSurface) FillPolygon(pts []core.Point, p Paint) {
	if len(pts) < 3 {
		return
	}
	minX, minY, maxX, maxY := bounds(pts)
	h := maxY - minY
	s.each(minX, minY, maxX, maxY, func(x, y int, pt core.Point) {
		if !inPolygon(pt, pts) {
			return
		}
		t := 0.0
		if h > 0 {
			t = (pt.Y - minY) / h
		}
		s.plot(x, y, p.At(t), p.Alpha)
	})
}

// StrokePolygon outlines a closed polygon.
func (s *CellSurface) StrokePolygon(pts []core.Point, width float64, col colorful.Color) {
	for i := range pts {
		s.strokeLine(pts[i], pts[(i+1)%len(pts)], width, col)
	}
}

// MeasureText returns the width of text in cells. Size is ignored.
func (s *CellSurface) MeasureText(text string, _ float64) float64 {
	return float64(runewidth.StringWidth(text))
}

// DrawLabel places text horizontally so that its centre sits on the ray at
// angle, half its width in from dist.
func (s *CellSurface) DrawLabel(c core.Point, angle, dist float64, text string, _ float64, col colorful.Color) {
	w := s.MeasureText(text, 0)
	mid := c.Polar(angle, math.Max(dist-w/2, 0))
	s.labels = append(s.labels, cellLabel{
		x:    int(math.Round(mid.X - w/2)),
		y:    int(math.Floor(mid.Y / 2)),
		text: text,
		fg:   col,
	})
}

// Flush writes the surface into screen at offset (ox, oy). Cells where
// nothing was drawn are left untouched.
func (s *CellSurface) Flush(screen *core.Screen, ox, oy int) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top, topSet := s.Pixel(col, row*2)
			bot, botSet := s.Pixel(col, row*2+1)
			switch {
			case topSet && botSet:
				screen.SetCell(ox+col, oy+row, core.Cell{Rune: upperHalf, FG: ToCore(top), BG: ToCore(bot)})
			case topSet:
				screen.SetCell(ox+col, oy+row, core.Cell{Rune: upperHalf, FG: ToCore(top)})
			case botSet:
				screen.SetCell(ox+col, oy+row, core.Cell{Rune: lowerHalf, FG: ToCore(bot)})
			}
		}
	}

	for _, l := range s.labels {
		x := l.x
		for _, r := range l.text {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				continue
			}
			if x >= 0 && x+rw <= s.cols && l.y >= 0 && l.y < s.rows {
				screen.SetCell(ox+x, oy+l.y, core.Cell{Rune: r, FG: ToCore(l.fg), BG: s.cellBackground(x, l.y)})
				for i := 1; i < rw; i++ {
					screen.SetCell(ox+x+i, oy+l.y, core.Cell{FG: ToCore(l.fg), BG: s.cellBackground(x+i, l.y)})
				}
			}
			x += rw
		}
	}
}

// cellBackground is the color a label cell should sit on.
func (s *CellSurface) cellBackground(col, row int) core.Color {
	if c, ok := s.Pixel(col, row*2); ok {
		return ToCore(c)
	}
	if c, ok := s.Pixel(col, row*2+1); ok {
		return ToCore(c)
	}
	return core.ColorDefault
}
