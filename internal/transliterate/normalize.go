package transliterate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidInput is returned for words that are empty or contain
// characters outside a-z.
var ErrInvalidInput = errors.New("invalid input")

// Validate checks that word is non-empty and consists only of a-z.
func Validate(word string) error {
	if word == "" {
		return fmt.Errorf("%w: word cannot be empty", ErrInvalidInput)
	}

	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return fmt.Errorf("%w: unsupported character %q at position %d", ErrInvalidInput, rune(c), i)
		}
	}

	return nil
}

// Normalize prepares raw user input for Translate. It trims surrounding
// space, removes diacritics ("Café" becomes "cafe"), folds case and then
// validates the result.
func Normalize(input string) (string, error) {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Lower(language.Und),
	)

	folded, _, err := transform.String(t, strings.TrimSpace(input))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := Validate(folded); err != nil {
		return "", err
	}

	return folded, nil
}
