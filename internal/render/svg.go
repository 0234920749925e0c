package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"

	"codeberg.org/snonux/gallifreyan/internal/layout"
)

// Options configures SVG output.
type Options struct {
	Stroke      string
	Fill        string // paint of filled shapes, normally the background
	Background  string
	StrokeWidth float64
	Decorate    bool
}

// DefaultOptions returns black ink on white.
func DefaultOptions() Options {
	return Options{
		Stroke:      "black",
		Fill:        "white",
		Background:  "white",
		StrokeWidth: 4,
	}
}

// SVG is a Canvas that records an SVG document.
type SVG struct {
	size int
	opts Options
	body bytes.Buffer
}

// NewSVG creates an empty square SVG canvas.
func NewSVG(size int, opts Options) *SVG {
	return &SVG{size: size, opts: opts}
}

// Ellipse implements Canvas.
func (s *SVG) Ellipse(b image.Rectangle, filled bool) {
	cx, cy, rx, ry := ellipseOf(b)
	if filled {
		fmt.Fprintf(&s.body, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="%s" stroke="none"/>`+"\n",
			cx, cy, rx, ry, s.opts.Fill)
		return
	}
	fmt.Fprintf(&s.body, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		cx, cy, rx, ry, s.opts.Stroke, s.opts.StrokeWidth)
}

// Arc implements Canvas.
func (s *SVG) Arc(b image.Rectangle, start, end float64) {
	span := end - start
	if span >= 360 {
		s.Ellipse(b, false)
		return
	}
	if span <= 0 {
		return
	}

	cx, cy, rx, ry := ellipseOf(b)
	x0, y0 := cx+rx*math.Cos(start*math.Pi/180), cy+ry*math.Sin(start*math.Pi/180)
	x1, y1 := cx+rx*math.Cos(end*math.Pi/180), cy+ry*math.Sin(end*math.Pi/180)

	large := 0
	if span > 180 {
		large = 1
	}

	fmt.Fprintf(&s.body, `  <path d="M %.2f %.2f A %g %g 0 %d 1 %.2f %.2f" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		x0, y0, rx, ry, large, x1, y1, s.opts.Stroke, s.opts.StrokeWidth)
}

// Dot implements Decorator.
func (s *SVG) Dot(b image.Rectangle) {
	cx, cy, rx, ry := ellipseOf(b)
	fmt.Fprintf(&s.body, `  <ellipse cx="%g" cy="%g" rx="%g" ry="%g" fill="%s" stroke="none"/>`+"\n",
		cx, cy, rx, ry, s.opts.Stroke)
}

// Line implements Decorator.
func (s *SVG) Line(from, to image.Point) {
	fmt.Fprintf(&s.body, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%g"/>`+"\n",
		from.X, from.Y, to.X, to.Y, s.opts.Stroke, s.opts.StrokeWidth)
}

// WriteTo writes the complete document to w.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.size, s.size, s.size, s.size)
	if s.opts.Background != "" {
		fmt.Fprintf(&doc, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", s.opts.Background)
	}
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")

	return doc.WriteTo(w)
}

func ellipseOf(b image.Rectangle) (cx, cy, rx, ry float64) {
	rx = float64(b.Dx()) / 2
	ry = float64(b.Dy()) / 2
	return float64(b.Min.X) + rx, float64(b.Min.Y) + ry, rx, ry
}

// WriteSVG renders wl on a canvasSize square and writes the document to w.
func WriteSVG(w io.Writer, wl *layout.WordLayout, canvasSize int, opts Options) error {
	svg := NewSVG(canvasSize, opts)
	Draw(svg, wl.Commands())
	if opts.Decorate {
		Decorate(svg, wl)
	}

	if _, err := svg.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}
