package transliterate

import "strings"

// Token is a single Gallifreyan letter.
type Token string

const (
	TokA  Token = "a"
	TokB  Token = "b"
	TokCh Token = "ch"
	TokD  Token = "d"
	TokE  Token = "e"
	TokF  Token = "f"
	TokG  Token = "g"
	TokH  Token = "h"
	TokI  Token = "i"
	TokJ  Token = "j"
	TokK  Token = "k"
	TokL  Token = "l"
	TokM  Token = "m"
	TokN  Token = "n"
	TokNg Token = "ng"
	TokO  Token = "o"
	TokP  Token = "p"
	TokQ  Token = "q" // q not followed by u
	TokQu Token = "qu"
	TokR  Token = "r"
	TokS  Token = "s"
	TokSh Token = "sh"
	TokT  Token = "t"
	TokTh Token = "th"
	TokU  Token = "u"
	TokV  Token = "v"
	TokW  Token = "w"
	TokX  Token = "x"
	TokY  Token = "y"
	TokZ  Token = "z"
)

// Alphabet lists every token Translate can produce, in alphabetical order.
var Alphabet = []Token{
	TokA, TokB, TokCh, TokD, TokE, TokF, TokG, TokH, TokI, TokJ,
	TokK, TokL, TokM, TokN, TokNg, TokO, TokP, TokQ, TokQu, TokR,
	TokS, TokSh, TokT, TokTh, TokU, TokV, TokW, TokX, TokY, TokZ,
}

// IsToken reports whether s names a token of the alphabet.
func IsToken(s string) bool {
	for _, t := range Alphabet {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Join renders tokens as a space separated string, e.g. "k a t".
func Join(tokens []Token) string {
	ss := make([]string, len(tokens))
	for i, t := range tokens {
		ss[i] = string(t)
	}
	return strings.Join(ss, " ")
}
