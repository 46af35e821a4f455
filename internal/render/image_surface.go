package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/vovakirdan/tui-wheel/internal/core"
)

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

func loadBold() (*truetype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	return boldFont, boldErr
}

// ImageSurface draws into an RGBA image with anti-aliasing.
type ImageSurface struct {
	dc     *gg.Context
	font   *truetype.Font
	faces  map[float64]font.Face
	opaque bool
}

// NewImageSurface creates a w×h surface. An opaque surface clears to
// Background; otherwise it clears to transparent.
func NewImageSurface(w, h int, opaque bool) (*ImageSurface, error) {
	f, err := loadBold()
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &ImageSurface{
		dc:     gg.NewContext(w, h),
		font:   f,
		faces:  make(map[float64]font.Face),
		opaque: opaque,
	}, nil
}

// Size returns the image size in pixels.
func (s *ImageSurface) Size() (w, h float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// Clear resets every pixel.
func (s *ImageSurface) Clear() {
	if s.opaque {
		s.dc.SetColor(Background)
	} else {
		s.dc.SetRGBA(0, 0, 0, 0)
	}
	s.dc.Clear()
}

// setFill installs p as the fill style. Radial paints use c and r, vertical
// paints span top to bottom.
func (s *ImageSurface) setFill(p Paint, c core.Point, r, top, bottom float64) {
	switch p.Gradient {
	case GradientRadial:
		g := gg.NewRadialGradient(c.X, c.Y, 0, c.X, c.Y, r)
		g.AddColorStop(0, nrgba(p.From, p.Alpha))
		g.AddColorStop(1, nrgba(p.To, p.Alpha))
		s.dc.SetFillStyle(g)
	case GradientVertical:
		g := gg.NewLinearGradient(0, top, 0, bottom)
		g.AddColorStop(0, nrgba(p.From, p.Alpha))
		g.AddColorStop(1, nrgba(p.To, p.Alpha))
		s.dc.SetFillStyle(g)
	default:
		s.dc.SetColor(nrgba(p.From, p.Alpha))
	}
}

// FillCircle fills a disc; radial paints run from c outwards.
func (s *ImageSurface) FillCircle(c core.Point, r float64, p Paint) {
	s.setFill(p, c, r, c.Y-r, c.Y+r)
	s.dc.DrawCircle(c.X, c.Y, r)
	s.dc.Fill()
}

// StrokeCircle outlines a circle.
func (s *ImageSurface) StrokeCircle(c core.Point, r, width float64, col colorful.Color) {
	s.dc.SetColor(col)
	s.dc.SetLineWidth(width)
	s.dc.DrawCircle(c.X, c.Y, r)
	s.dc.Stroke()
}

func (s *ImageSurface) wedgePath(c core.Point, r, start, end float64) {
	s.dc.NewSubPath()
	s.dc.MoveTo(c.X, c.Y)
	s.dc.DrawArc(c.X, c.Y, r, start, end)
	s.dc.ClosePath()
}

// FillWedge fills a pie slice.
func (s *ImageSurface) FillWedge(c core.Point, r, start, end float64, p Paint) {
	s.setFill(p, c, r, c.Y-r, c.Y+r)
	s.wedgePath(c, r, start, end)
	s.dc.Fill()
}

// StrokeWedge outlines a pie slice.
func (s *ImageSurface) StrokeWedge(c core.Point, r, start, end, width float64, col colorful.Color) {
	s.dc.SetColor(col)
	s.dc.SetLineWidth(width)
	s.wedgePath(c, r, start, end)
	s.dc.Stroke()
}

func (s *ImageSurface) polygonPath(pts []core.Point) (minY, maxY float64) {
	s.dc.NewSubPath()
	for i, pt := range pts {
		if i == 0 {
			s.dc.MoveTo(pt.X, pt.Y)
			minY, maxY = pt.Y, pt.Y
			continue
		}
		s.dc.LineTo(pt.X, pt.Y)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	s.dc.ClosePath()
	return minY, maxY
}

// FillPolygon fills a closed polygon; vertical paints span its bounding box.
func (s *ImageSurface) FillPolygon(pts []core.Point, p Paint) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := s.polygonPath(pts)
	s.setFill(p, pts[0], 0, minY, maxY)
	s.dc.Fill()
}

// StrokePolygon outlines a closed polygon.
func (s *ImageSurface) StrokePolygon(pts []core.Point, width float64, col colorful.Color) {
	if len(pts) < 2 {
		return
	}
	s.polygonPath(pts)
	s.dc.SetColor(col)
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *ImageSurface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{Size: size})
	s.faces[size] = f
	return f
}

// MeasureText returns the advance width of text in pixels.
func (s *ImageSurface) MeasureText(text string, size float64) float64 {
	s.dc.SetFontFace(s.face(size))
	w, _ := s.dc.MeasureString(text)
	return w
}

// DrawLabel draws rotated text whose right edge sits dist away from c.
func (s *ImageSurface) DrawLabel(c core.Point, angle, dist float64, text string, size float64, col colorful.Color) {
	s.dc.Push()
	defer s.dc.Pop()

	s.dc.SetFontFace(s.face(size))
	s.dc.SetColor(col)
	s.dc.Translate(c.X, c.Y)
	s.dc.Rotate(angle)
	s.dc.DrawStringAnchored(text, dist, 0, 1, 0.5)
}

// Image returns the drawn image.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the image as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path.
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(alpha, 0, 1)*255 + 0.5)}
}
