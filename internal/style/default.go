package style

import (
	"fmt"

	tr "codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// Each consonant series shares a shape and decorates its six letters in
// the same order: none, two dots, three dots, three lines, one line, two lines.
var series = []struct {
	shape   Shape
	letters []tr.Token
}{
	{ShapeOnRim, []tr.Token{tr.TokB, tr.TokCh, tr.TokD, tr.TokG, tr.TokH, tr.TokF}},
	{ShapeInside, []tr.Token{tr.TokJ, tr.TokK, tr.TokL, tr.TokM, tr.TokN, tr.TokP}},
	{ShapeHalfRim, []tr.Token{tr.TokT, tr.TokSh, tr.TokR, tr.TokS, tr.TokV, tr.TokW}},
	{ShapeThroughRim, []tr.Token{tr.TokTh, tr.TokY, tr.TokZ, tr.TokNg, tr.TokQu, tr.TokX}},
}

var seriesDecorations = []struct{ dots, lines int }{
	{0, 0}, {2, 0}, {3, 0}, {0, 3}, {0, 1}, {0, 2},
}

var defaultTable = mustBuildDefault()

func mustBuildDefault() *Table {
	entries := map[tr.Token]LetterStyle{
		tr.TokA: {Shape: ShapeHalfRim},
		tr.TokE: {Shape: ShapeThroughRim},
		tr.TokI: {Shape: ShapeThroughRim, Lines: 1},
		tr.TokO: {Shape: ShapeInside},
		tr.TokU: {Shape: ShapeThroughRim, Lines: 1},
		// lone q sits in the th series next to qu
		tr.TokQ: {Shape: ShapeThroughRim, Dots: 1},
	}

	for _, s := range series {
		for i, tok := range s.letters {
			d := seriesDecorations[i]
			entries[tok] = LetterStyle{Shape: s.shape, Dots: d.dots, Lines: d.lines}
		}
	}

	t, err := NewTable(entries)
	if err != nil {
		panic(fmt.Sprintf("style: invalid default table: %v", err))
	}
	return t
}

// Default returns the shared default table. It covers every token of the
// transliteration alphabet and must not be modified.
func Default() *Table {
	return defaultTable
}
