package layout

import (
	"fmt"
	"image"

	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// Kind is the primitive a Command asks the renderer to draw.
type Kind int

const (
	KindEllipse Kind = iota
	KindArc
)

func (k Kind) String() string {
	switch k {
	case KindEllipse:
		return "ellipse"
	case KindArc:
		return "arc"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Command is one abstract draw operation.
//
// For ellipses Filled selects a solid disc over an outline. A filled arc
// means the renderer paints the disc first and then strokes only the part
// of its boundary between Start and End.
type Command struct {
	Kind   Kind                `json:"kind"`
	Box    image.Rectangle     `json:"box"`
	Filled bool                `json:"filled"`
	Start  float64             `json:"start,omitempty"`
	End    float64             `json:"end,omitempty"`
	Token  transliterate.Token `json:"token,omitempty"`
}

// Ellipse returns an ellipse command.
func Ellipse(box image.Rectangle, filled bool) Command {
	return Command{Kind: KindEllipse, Box: box, Filled: filled}
}

// Arc returns an arc command spanning start to end degrees.
func Arc(box image.Rectangle, start, end float64) Command {
	return Command{Kind: KindArc, Box: box, Start: start, End: end}
}

func (c Command) String() string {
	fill := "outline"
	if c.Filled {
		fill = "filled"
	}

	s := fmt.Sprintf("%s %v %s", c.Kind, c.Box, fill)
	if c.Kind == KindArc {
		s += fmt.Sprintf(" %.2f..%.2f", c.Start, c.End)
	}
	if c.Token != "" {
		s += " [" + string(c.Token) + "]"
	}
	return s
}
