package metrics

import (
	"errors"
	"fmt"
)

// Sentinel errors for metrics package.
var (
	// ErrMissingSpace is returned when a glyph table has no U+0020 entry.
	ErrMissingSpace = errors.New("metrics: glyph table has no space glyph")

	// ErrInvalidTextureSize is returned when the atlas side is not positive.
	ErrInvalidTextureSize = errors.New("metrics: texture size must be positive")
)

// GlyphError reports a glyph whose geometry breaks a table invariant.
type GlyphError struct {
	Rune   rune
	Reason string
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("metrics: glyph %U: %s", e.Rune, e.Reason)
}

// KeyError reports a glyph table key that is not a decimal code point.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("metrics: invalid glyph key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
