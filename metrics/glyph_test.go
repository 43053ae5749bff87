package metrics

import (
	"errors"
	"slices"
	"testing"
)

func testGlyphs() map[rune]Glyph {
	return map[rune]Glyph{
		' ': {Advance: 8, AtlasX: 1, AtlasY: 1},
		'A': {Left: 1, Top: 20, Width: 18, Height: 20, Advance: 20, AtlasX: 10, AtlasY: 1},
		'g': {Left: 1, Top: 14, Width: 12, Height: 19, Advance: 14, AtlasX: 40, AtlasY: 1},
	}
}

func TestNewCopiesGlyphs(t *testing.T) {
	glyphs := testGlyphs()
	m := New(64, 30, glyphs)

	glyphs['A'] = Glyph{Advance: 999}
	delete(glyphs, ' ')

	if got := m.Glyph('A').Advance; got != 20 {
		t.Errorf("Glyph('A').Advance = %v after caller mutation, want 20", got)
	}
	if _, ok := m.Lookup(Space); !ok {
		t.Error("space glyph disappeared after caller deleted it from its map")
	}
}

func TestGlyphFallback(t *testing.T) {
	m := New(64, 30, testGlyphs())
	space := m.Glyph(Space)

	tests := []struct {
		name string
		r    rune
		want Glyph
	}{
		{"present", 'A', testGlyphs()['A']},
		{"space", ' ', space},
		{"missing ascii", 'Z', space},
		{"missing non-bmp", '\U0001F600', space},
		{"replacement char", '�', space},
		{"negative", -1, space},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Glyph(tt.r); got != tt.want {
				t.Errorf("Glyph(%q) = %+v, want %+v", tt.r, got, tt.want)
			}
		})
	}
}

func TestGlyphWithoutSpaceIsZero(t *testing.T) {
	m := New(64, 30, map[rune]Glyph{'A': {Advance: 10}})
	if got := m.Glyph('B'); got != (Glyph{}) {
		t.Errorf("Glyph('B') = %+v, want zero Glyph", got)
	}
}

func TestLookup(t *testing.T) {
	m := New(64, 30, testGlyphs())
	if _, ok := m.Lookup('Z'); ok {
		t.Error("Lookup('Z') reported a glyph that is not in the table")
	}
	g, ok := m.Lookup('g')
	if !ok || g.Top != 14 {
		t.Errorf("Lookup('g') = %+v, %v", g, ok)
	}
}

func TestRunesSorted(t *testing.T) {
	m := New(64, 30, testGlyphs())
	want := []rune{' ', 'A', 'g'}
	if got := m.Runes(); !slices.Equal(got, want) {
		t.Errorf("Runes() = %q, want %q", got, want)
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestValidate(t *testing.T) {
	with := func(r rune, g Glyph) map[rune]Glyph {
		glyphs := testGlyphs()
		glyphs[r] = g
		return glyphs
	}

	tests := []struct {
		name     string
		size     int
		glyphs   map[rune]Glyph
		sentinel error
		reason   string
	}{
		{name: "valid", size: 64, glyphs: testGlyphs()},
		{name: "zero texture", size: 0, glyphs: testGlyphs(), sentinel: ErrInvalidTextureSize},
		{name: "no space", size: 64, glyphs: map[rune]Glyph{'A': {}}, sentinel: ErrMissingSpace},
		{name: "negative width", size: 64, glyphs: with('x', Glyph{Width: -1}), reason: "negative size"},
		{name: "negative advance", size: 64, glyphs: with('x', Glyph{Advance: -2}), reason: "negative advance"},
		{name: "negative origin", size: 64, glyphs: with('x', Glyph{AtlasX: -1}), reason: "negative atlas origin"},
		{name: "overflow x", size: 64, glyphs: with('x', Glyph{AtlasX: 60, Width: 5}), reason: "bitmap exceeds atlas bounds"},
		{name: "overflow y", size: 64, glyphs: with('x', Glyph{AtlasY: 50, Height: 15}), reason: "bitmap exceeds atlas bounds"},
		{name: "touching edge", size: 64, glyphs: with('x', Glyph{AtlasX: 54, Width: 10, AtlasY: 44, Height: 20})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.size, 30, tt.glyphs).Validate()
			switch {
			case tt.sentinel != nil:
				if !errors.Is(err, tt.sentinel) {
					t.Errorf("Validate() = %v, want %v", err, tt.sentinel)
				}
			case tt.reason != "":
				var ge *GlyphError
				if !errors.As(err, &ge) {
					t.Fatalf("Validate() = %v, want *GlyphError", err)
				}
				if ge.Rune != 'x' || ge.Reason != tt.reason {
					t.Errorf("GlyphError = %+v, want rune 'x' reason %q", ge, tt.reason)
				}
			default:
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			}
		})
	}
}
