package transliterate

import "fmt"

// Scanner walks a word left to right and yields one token per step.
// Digraphs are always preferred: "t" followed by "h" is folded into "th"
// even across morpheme boundaries, so "lighthouse" reads l i g h th o u s e.
type Scanner struct {
	word string
	pos  int
}

// NewScanner returns a scanner positioned at the start of word.
func NewScanner(word string) *Scanner {
	return &Scanner{word: word}
}

// Pos returns the index of the next unread byte.
func (s *Scanner) Pos() int {
	return s.pos
}

// Next returns the next token and true, or false when the word is exhausted.
// Bytes outside a-z produce no token and are skipped.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.word) {
		c := s.word[s.pos]
		s.pos++

		// lookahead is 0 at the end of the word
		var next byte
		if s.pos < len(s.word) {
			next = s.word[s.pos]
		}

		switch c {
		case 'a', 'b', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
			'o', 'p', 'r', 'u', 'v', 'w', 'x', 'y', 'z':
			return Token(c), true
		case 'c':
			switch next {
			case 'h':
				s.pos++
				return TokCh, true
			case 'k':
				s.pos++
				return TokK, true
			case 'a', 'o', 'u', 'l', 'r', 0:
				// hard c
				return TokK, true
			default:
				// soft c
				return TokS, true
			}
		case 'n':
			return s.digraph(next, 'g', TokNg, TokN), true
		case 'q':
			return s.digraph(next, 'u', TokQu, TokQ), true
		case 's':
			return s.digraph(next, 'h', TokSh, TokS), true
		case 't':
			return s.digraph(next, 'h', TokTh, TokT), true
		}
	}
	return "", false
}

// digraph consumes the lookahead byte when it matches second.
func (s *Scanner) digraph(next, second byte, pair, single Token) Token {
	if next == second {
		s.pos++
		return pair
	}
	return single
}

// Translate converts a lowercase word into its Gallifreyan letters.
// An empty word yields an empty slice. Characters outside a-z are dropped;
// use TranslateStrict to reject them instead.
func Translate(word string) []Token {
	tokens := make([]Token, 0, len(word))
	s := NewScanner(word)
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// TranslateStrict validates word before translating it.
func TranslateStrict(word string) ([]Token, error) {
	if err := Validate(word); err != nil {
		return nil, fmt.Errorf("cannot translate %q: %w", word, err)
	}
	return Translate(word), nil
}
