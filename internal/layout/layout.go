package layout

import (
	"fmt"

	"codeberg.org/snonux/gallifreyan/internal/style"
	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// Options sizes the canvas and the letter geometry, all in pixels.
type Options struct {
	CanvasSize    int     // width and height of the square canvas
	InnerIndent   int     // gap between canvas edge and word circle
	LetterRadius  float64 // radius of every letter circle
	InsideOffset  float64 // how far inside the rim inside letters sit
	OutsideOffset float64 // how far outside the rim half-rim letters sit
}

// DefaultOptions returns the geometry of a 1000px canvas.
func DefaultOptions() Options {
	return Options{
		CanvasSize:    1000,
		InnerIndent:   100,
		LetterRadius:  60,
		InsideOffset:  80,
		OutsideOffset: 30,
	}
}

// OptionsFor scales the default letter geometry to another canvas.
func OptionsFor(canvasSize, innerIndent int) Options {
	def := DefaultOptions()
	defRadius := float64(def.CanvasSize-2*def.InnerIndent) / 2
	scale := (float64(canvasSize-2*innerIndent) / 2) / defRadius

	return Options{
		CanvasSize:    canvasSize,
		InnerIndent:   innerIndent,
		LetterRadius:  def.LetterRadius * scale,
		InsideOffset:  def.InsideOffset * scale,
		OutsideOffset: def.OutsideOffset * scale,
	}
}

// Slot is the placement of one letter.
type Slot struct {
	Token  transliterate.Token `json:"token"`
	Style  style.LetterStyle   `json:"style"`
	Angle  float64             `json:"angle"`
	Center Point               `json:"center"`
	Radius float64             `json:"radius"`

	// ArcStart and ArcEnd are set for half-rim letters only.
	ArcStart float64 `json:"arc_start,omitempty"`
	ArcEnd   float64 `json:"arc_end,omitempty"`
}

// WordLayout is the computed geometry of one word.
type WordLayout struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Slots  []Slot  `json:"slots"`
}

// Commands returns the draw commands of the layout: the word circle
// followed by one shape per letter in slot order.
func (wl *WordLayout) Commands() []Command {
	cmds := make([]Command, 0, len(wl.Slots)+1)
	cmds = append(cmds, Ellipse(boundingBox(wl.Center, wl.Radius), false))

	for _, s := range wl.Slots {
		box := boundingBox(s.Center, s.Radius)

		var cmd Command
		if s.Style.Shape == style.ShapeHalfRim {
			cmd = Arc(box, s.ArcStart, s.ArcEnd)
			cmd.Filled = true
		} else {
			cmd = Ellipse(box, false)
		}
		cmd.Token = s.Token
		cmds = append(cmds, cmd)
	}

	return cmds
}

// Engine lays out words with a fixed style table and geometry.
type Engine struct {
	table *style.Table
	opts  Options
}

// NewEngine creates a layout engine.
func NewEngine(table *style.Table, opts Options) *Engine {
	return &Engine{table: table, opts: opts}
}

// Options returns the geometry the engine was created with.
func (e *Engine) Options() Options {
	return e.opts
}

// Layout places tokens evenly around the word circle, starting at angle 0.
func (e *Engine) Layout(tokens []transliterate.Token) (*WordLayout, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no letters to place", ErrDegenerateGeometry)
	}

	radius := float64(e.opts.CanvasSize-2*e.opts.InnerIndent) / 2
	if radius <= 0 {
		return nil, fmt.Errorf("%w: canvas %d with indent %d leaves no word circle",
			ErrDegenerateGeometry, e.opts.CanvasSize, e.opts.InnerIndent)
	}
	if e.opts.LetterRadius <= 0 {
		return nil, fmt.Errorf("%w: letter radius %g", ErrDegenerateGeometry, e.opts.LetterRadius)
	}

	half := float64(e.opts.CanvasSize) / 2
	wl := &WordLayout{
		Center: Point{X: half, Y: half},
		Radius: radius,
		Slots:  make([]Slot, 0, len(tokens)),
	}

	step := 360 / float64(len(tokens))
	for i, tok := range tokens {
		ls, err := e.table.Lookup(tok)
		if err != nil {
			return nil, fmt.Errorf("letter %d: %w", i, err)
		}

		slot, err := e.place(wl, tok, ls, float64(i)*step)
		if err != nil {
			return nil, fmt.Errorf("letter %d (%s): %w", i, tok, err)
		}
		wl.Slots = append(wl.Slots, slot)
	}

	return wl, nil
}

func (e *Engine) place(wl *WordLayout, tok transliterate.Token, ls style.LetterStyle, angle float64) (Slot, error) {
	slot := Slot{Token: tok, Style: ls, Angle: angle, Radius: e.opts.LetterRadius}

	switch ls.Shape {
	case style.ShapeInside:
		slot.Center = AngularPosition(wl.Center, wl.Radius-e.opts.InsideOffset, angle)
	case style.ShapeOnRim, style.ShapeThroughRim:
		slot.Center = AngularPosition(wl.Center, wl.Radius, angle)
	case style.ShapeHalfRim:
		d := wl.Radius + e.opts.OutsideOffset
		slot.Center = AngularPosition(wl.Center, d, angle)

		theta, err := IntersectionAngle(wl.Radius, 2*e.opts.LetterRadius, d)
		if err != nil {
			return Slot{}, err
		}
		base := 180 - angle + 90
		slot.ArcStart = base - theta
		slot.ArcEnd = base + theta
	default:
		return Slot{}, fmt.Errorf("unsupported shape %v", ls.Shape)
	}

	return slot, nil
}

// Layout is the one-shot form of Engine.Layout: it lays out tokens on a
// canvasSize square with the word circle innerIndent pixels from the edge
// and returns the draw commands.
func Layout(tokens []transliterate.Token, table *style.Table, canvasSize, innerIndent int) ([]Command, error) {
	wl, err := NewEngine(table, OptionsFor(canvasSize, innerIndent)).Layout(tokens)
	if err != nil {
		return nil, err
	}
	return wl.Commands(), nil
}
