// Package transliterate converts Latin words into Circular Gallifreyan
// phonetic tokens. It also provides the input normalisation that callers
// run before transliteration: case folding, diacritic stripping and
// validation against the supported a-z alphabet.
package transliterate
