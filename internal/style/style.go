package style

import (
	"errors"
	"fmt"
	"sort"

	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// ErrUnknownToken is returned when a token has no entry in a table.
var ErrUnknownToken = errors.New("unknown token")

// MaxDecorations is the largest dot or line count a letter may carry.
const MaxDecorations = 3

// Shape describes where a letter circle sits relative to the word circle.
type Shape int

const (
	ShapeOnRim Shape = iota
	ShapeInside
	ShapeHalfRim
	ShapeThroughRim
)

var shapeNames = map[Shape]string{
	ShapeOnRim:      "on_rim",
	ShapeInside:     "inside",
	ShapeHalfRim:    "half_rim",
	ShapeThroughRim: "through_rim",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// MarshalText encodes the shape by name.
func (s Shape) MarshalText() ([]byte, error) {
	if _, ok := shapeNames[s]; !ok {
		return nil, fmt.Errorf("invalid shape %d", int(s))
	}
	return []byte(s.String()), nil
}

// ParseShape parses a shape name as produced by Shape.String.
func ParseShape(name string) (Shape, error) {
	for shape, n := range shapeNames {
		if n == name {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// LetterStyle is the static drawing attributes of one letter.
type LetterStyle struct {
	Shape Shape `json:"shape"`
	Dots  int   `json:"dots"`
	Lines int   `json:"lines"`
}

func (ls LetterStyle) validate() error {
	if _, ok := shapeNames[ls.Shape]; !ok {
		return fmt.Errorf("invalid shape %d", int(ls.Shape))
	}
	if ls.Dots < 0 || ls.Dots > MaxDecorations {
		return fmt.Errorf("dot count %d out of range 0-%d", ls.Dots, MaxDecorations)
	}
	if ls.Lines < 0 || ls.Lines > MaxDecorations {
		return fmt.Errorf("line count %d out of range 0-%d", ls.Lines, MaxDecorations)
	}
	return nil
}

// Table maps tokens to their styles. The zero value is an empty table.
type Table struct {
	entries map[transliterate.Token]LetterStyle
}

// NewTable builds a table from entries. The map is copied.
func NewTable(entries map[transliterate.Token]LetterStyle) (*Table, error) {
	t := &Table{entries: make(map[transliterate.Token]LetterStyle, len(entries))}
	for tok, ls := range entries {
		if err := ls.validate(); err != nil {
			return nil, fmt.Errorf("style for %q: %w", tok, err)
		}
		t.entries[tok] = ls
	}
	return t, nil
}

// Lookup returns the style of tok.
func (t *Table) Lookup(tok transliterate.Token) (LetterStyle, error) {
	ls, ok := t.entries[tok]
	if !ok {
		return LetterStyle{}, fmt.Errorf("%w: %q has no style entry", ErrUnknownToken, tok)
	}
	return ls, nil
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Tokens returns the tokens of the table in sorted order.
func (t *Table) Tokens() []transliterate.Token {
	tokens := make([]transliterate.Token, 0, len(t.entries))
	for tok := range t.entries {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return tokens
}

// With returns a new table with overrides layered on top of t.
func (t *Table) With(overrides map[transliterate.Token]LetterStyle) (*Table, error) {
	merged := make(map[transliterate.Token]LetterStyle, len(t.entries)+len(overrides))
	for tok, ls := range t.entries {
		merged[tok] = ls
	}
	for tok, ls := range overrides {
		merged[tok] = ls
	}
	return NewTable(merged)
}
