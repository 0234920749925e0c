package layout

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrDegenerateGeometry is returned when a layout has no real solution.
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Point is a position on the canvas in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// AngularPosition returns the point at radius from center, angle degrees
// from straight down.
func AngularPosition(center Point, radius, angle float64) Point {
	rad := radians(angle)
	return Point{
		X: center.X + radius*math.Sin(rad),
		Y: center.Y + radius*math.Cos(rad),
	}
}

// IntersectionAngle returns, in degrees, the half angle at the letter
// circle's center between the two points where it crosses the word circle.
// r1 is the word circle radius, r2 the letter circle diameter and d the
// distance between both centers.
func IntersectionAngle(r1, r2, d float64) (float64, error) {
	if d == 0 {
		return 0, fmt.Errorf("%w: concentric circles", ErrDegenerateGeometry)
	}

	radicand := (-d + r2 - r1) * (-d - r2 + r1) * (-d + r2 + r1) * (d + r2 + r1)
	if radicand < 0 {
		return 0, fmt.Errorf("%w: circles r1=%g r2=%g d=%g do not intersect", ErrDegenerateGeometry, r1, r2, d)
	}

	x := (d*d - r2*r2 + r1*r1) / (2 * d)
	a := math.Sqrt(radicand) / d

	return degrees(math.Atan((a / 2) / (d - x))), nil
}

// boundingBox returns the integral box of a circle, truncating each edge.
func boundingBox(center Point, radius float64) image.Rectangle {
	return image.Rect(
		int(center.X-radius), int(center.Y-radius),
		int(center.X+radius), int(center.Y+radius),
	)
}
