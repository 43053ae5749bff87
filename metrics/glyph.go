package metrics

import (
	"maps"
	"slices"
)

// Space is the fallback code point. Every table must contain it.
const Space rune = ' '

// Glyph is the placement of one code point, both on screen and in the atlas.
// All screen-side values are in layout units; AtlasX and AtlasY are pixels.
type Glyph struct {
	// Left and Top offset the visual box from the pen position.
	// Top is measured upwards from the baseline.
	Left, Top float64

	// Width and Height are the size of the visual box. Non-negative.
	Width, Height float64

	// Advance is the horizontal pen displacement after the glyph. Non-negative.
	Advance float64

	// AtlasX and AtlasY locate the top-left pixel of the glyph bitmap.
	AtlasX, AtlasY int
}

// FontMetrics is an immutable glyph table for one atlas.
type FontMetrics struct {
	// TextureSize is the side of the square atlas image in pixels.
	TextureSize int

	// LineGap is the vertical distance between successive baselines.
	LineGap float64

	glyphs map[rune]Glyph
}

// New creates a FontMetrics. The glyph map is copied, so later changes to
// it are not observed.
//
// New does not validate its input. A table without a space glyph makes
// Glyph return the zero Glyph for unknown code points; loaders that want to
// reject such tables call Validate.
func New(textureSize int, lineGap float64, glyphs map[rune]Glyph) *FontMetrics {
	return &FontMetrics{
		TextureSize: textureSize,
		LineGap:     lineGap,
		glyphs:      maps.Clone(glyphs),
	}
}

// Glyph returns the glyph for r, or the space glyph when the table has no
// entry for r. It never fails.
func (m *FontMetrics) Glyph(r rune) Glyph {
	if g, ok := m.glyphs[r]; ok {
		return g
	}
	return m.glyphs[Space]
}

// Lookup returns the glyph for r without fallback.
func (m *FontMetrics) Lookup(r rune) (Glyph, bool) {
	g, ok := m.glyphs[r]
	return g, ok
}

// Len returns the number of glyphs in the table.
func (m *FontMetrics) Len() int {
	return len(m.glyphs)
}

// Runes returns the covered code points in ascending order.
func (m *FontMetrics) Runes() []rune {
	return slices.Sorted(maps.Keys(m.glyphs))
}

// Validate checks the table invariants: a positive texture size, a space
// glyph, non-negative glyph sizes and advances, and glyph bitmaps that lie
// inside the atlas.
func (m *FontMetrics) Validate() error {
	if m.TextureSize <= 0 {
		return ErrInvalidTextureSize
	}
	if _, ok := m.glyphs[Space]; !ok {
		return ErrMissingSpace
	}
	size := float64(m.TextureSize)
	for _, r := range m.Runes() {
		g := m.glyphs[r]
		switch {
		case g.Width < 0 || g.Height < 0:
			return &GlyphError{Rune: r, Reason: "negative size"}
		case g.Advance < 0:
			return &GlyphError{Rune: r, Reason: "negative advance"}
		case g.AtlasX < 0 || g.AtlasY < 0:
			return &GlyphError{Rune: r, Reason: "negative atlas origin"}
		case float64(g.AtlasX)+g.Width > size || float64(g.AtlasY)+g.Height > size:
			return &GlyphError{Rune: r, Reason: "bitmap exceeds atlas bounds"}
		}
	}
	return nil
}
