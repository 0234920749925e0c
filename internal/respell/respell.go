package respell

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Respeller rewrites a word into a phonetic spelling made of a-z only.
type Respeller interface {
	// Respell returns the phonetic spelling of word
	Respell(ctx context.Context, word string) (string, error)

	// Name returns the respeller name
	Name() string
}

// Identity returns words unchanged.
type Identity struct{}

// Respell implements Respeller.
func (Identity) Respell(_ context.Context, word string) (string, error) {
	return word, nil
}

// Name implements Respeller.
func (Identity) Name() string {
	return "identity"
}

// Fallback wraps a primary respeller with a secondary one.
type Fallback struct {
	primary  Respeller
	fallback Respeller
	warn     io.Writer
}

// WithFallback creates a respeller that uses fallback whenever primary fails.
func WithFallback(primary, fallback Respeller) *Fallback {
	return &Fallback{primary: primary, fallback: fallback, warn: os.Stderr}
}

// Respell tries the primary respeller first and falls back on error.
func (f *Fallback) Respell(ctx context.Context, word string) (string, error) {
	spelling, err := f.primary.Respell(ctx, word)
	if err == nil {
		return spelling, nil
	}

	fmt.Fprintf(f.warn, "Warning: %s respelling failed: %v. Falling back to %s\n",
		f.primary.Name(), err, f.fallback.Name())
	return f.fallback.Respell(ctx, word)
}

// Name implements Respeller.
func (f *Fallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", f.primary.Name(), f.fallback.Name())
}
