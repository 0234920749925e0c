package render

import (
	"encoding/json"
	"fmt"
	"io"

	"codeberg.org/snonux/gallifreyan/internal/layout"
	"codeberg.org/snonux/gallifreyan/internal/transliterate"
)

// WriteText writes a human readable listing of a word's commands.
func WriteText(w io.Writer, word string, tokens []transliterate.Token, cmds []layout.Command) error {
	if _, err := fmt.Fprintf(w, "word: %s\nletters: %s\n", word, transliterate.Join(tokens)); err != nil {
		return err
	}
	for _, cmd := range cmds {
		if _, err := fmt.Fprintln(w, cmd); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
