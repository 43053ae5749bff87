package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/fontatlas"
)

// document is the on-disk atlas description written by the builder.
type document struct {
	TextureSize int                  `json:"textureSize"`
	LineGap     float64              `json:"lineGap"`
	Glyphs      map[string]glyphJSON `json:"glyphs"`
}

// glyphJSON uses the short "x"/"y" names of the description format for the
// atlas origin.
type glyphJSON struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Advance float64 `json:"advance"`
}

// Decode reads an atlas description document and validates it.
//
// The document may start with a UTF-8 or UTF-16 byte order mark; without
// one it is read as UTF-8.
func Decode(r io.Reader) (*FontMetrics, error) {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("metrics: decode atlas description: %w", err)
	}

	glyphs := make(map[rune]Glyph, len(doc.Glyphs))
	for key, g := range doc.Glyphs {
		cp, err := strconv.ParseInt(key, 10, 32)
		if err != nil {
			return nil, &KeyError{Key: key, Err: err}
		}
		glyphs[rune(cp)] = Glyph{
			Left:    g.Left,
			Top:     g.Top,
			Width:   g.Width,
			Height:  g.Height,
			Advance: g.Advance,
			AtlasX:  g.X,
			AtlasY:  g.Y,
		}
	}

	m := New(doc.TextureSize, doc.LineGap, glyphs)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	fontatlas.Logger().Debug("metrics: decoded atlas description",
		"textureSize", m.TextureSize, "lineGap", m.LineGap, "glyphs", m.Len())
	return m, nil
}

// LoadFile reads and validates the atlas description stored at path.
func LoadFile(path string) (*FontMetrics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}

// Encode writes m as an indented atlas description document.
func Encode(w io.Writer, m *FontMetrics) error {
	doc := document{
		TextureSize: m.TextureSize,
		LineGap:     m.LineGap,
		Glyphs:      make(map[string]glyphJSON, m.Len()),
	}
	for r, g := range m.glyphs {
		doc.Glyphs[strconv.Itoa(int(r))] = glyphJSON{
			X:       g.AtlasX,
			Y:       g.AtlasY,
			Left:    g.Left,
			Top:     g.Top,
			Width:   g.Width,
			Height:  g.Height,
			Advance: g.Advance,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("metrics: encode atlas description: %w", err)
	}
	return nil
}

// SaveFile writes m to path, replacing any existing file.
func SaveFile(path string, m *FontMetrics) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("metrics: %w", cerr)
		}
	}()
	return Encode(f, m)
}
