package render

import (
	"image"
	"math"

	"codeberg.org/snonux/gallifreyan/internal/layout"
)

// Canvas is a drawing surface for layout commands.
type Canvas interface {
	// Ellipse draws the ellipse inscribed in box, filled or as an outline.
	Ellipse(box image.Rectangle, filled bool)

	// Arc strokes the part of the ellipse inscribed in box between start and
	// end degrees, 0 at three o'clock and growing clockwise.
	Arc(box image.Rectangle, start, end float64)
}

// Decorator draws the dots and lines that tell letters of a series apart.
type Decorator interface {
	Dot(box image.Rectangle)
	Line(from, to image.Point)
}

// Draw replays cmds on c in order.
func Draw(c Canvas, cmds []layout.Command) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case layout.KindEllipse:
			c.Ellipse(cmd.Box, cmd.Filled)
		case layout.KindArc:
			if cmd.Filled {
				c.Ellipse(cmd.Box, true)
			}
			c.Arc(cmd.Box, cmd.Start, cmd.End)
		}
	}
}

// decoration spacing in degrees between neighbouring dots or lines
const decorationSpread = 25.0

// Decorate adds dots and lines to every letter of wl. Dots sit inside the
// letter circle on the side facing the word center, lines point away from it.
func Decorate(d Decorator, wl *layout.WordLayout) {
	for _, s := range wl.Slots {
		dotRadius := math.Max(s.Radius/8, 1)

		for i := 0; i < s.Style.Dots; i++ {
			angle := s.Angle + 180 + spread(i, s.Style.Dots)
			c := layout.AngularPosition(s.Center, s.Radius*0.6, angle)
			d.Dot(box(c, dotRadius))
		}

		for i := 0; i < s.Style.Lines; i++ {
			angle := s.Angle + spread(i, s.Style.Lines)
			from := layout.AngularPosition(s.Center, s.Radius, angle)
			to := layout.AngularPosition(s.Center, s.Radius*1.8, angle)
			d.Line(point(from), point(to))
		}
	}
}

// spread centers n decorations around the letter's axis.
func spread(i, n int) float64 {
	return (float64(i) - float64(n-1)/2) * decorationSpread
}

func point(p layout.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

func box(c layout.Point, r float64) image.Rectangle {
	return image.Rect(int(c.X-r), int(c.Y-r), int(c.X+r), int(c.Y+r))
}
