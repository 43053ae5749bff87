package builder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math/bits"
	"os"
	"slices"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/metrics"
)

// Atlas is a baked font: the atlas image and the metrics describing it.
type Atlas struct {
	// Family is the font family name, or "" if the font has none.
	Family string

	// Metrics locates every baked glyph in Image.
	Metrics *metrics.FontMetrics

	// Image is the square coverage bitmap, Metrics.TextureSize pixels wide.
	Image *image.Gray
}

// Build rasterizes the glyphs selected by cfg from a TrueType or OpenType
// font and packs them into a new atlas.
func Build(fontData []byte, cfg Config) (*Atlas, error) {
	if len(fontData) == 0 {
		return nil, ErrEmptyFontData
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("builder: failed to parse font: %w", err)
	}

	runes, err := selectRunes(fontData, cfg)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(cfg.Size),
		DPI:     72, // Size is then pixels per em
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("builder: failed to create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	var buf sfnt.Buffer
	bounds, err := f.Bounds(&buf, fixed.I(cfg.Size), font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("builder: failed to read font bounds: %w", err)
	}
	tileW := (bounds.Max.X - bounds.Min.X).Ceil()
	tileH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	cols := min(cfg.Columns, len(runes))
	rows := (len(runes) + cols - 1) / cols
	outer := max(tileW, tileH) + cfg.Margin
	textureSize := nextPowerOfTwo(2*cfg.Margin + max(cols, rows)*outer)
	if textureSize > MaxTextureSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrAtlasTooLarge, textureSize, MaxTextureSize)
	}

	fontatlas.Logger().Debug("builder: atlas layout",
		"size", cfg.Size, "glyphs", len(runes), "tile", image.Pt(tileW, tileH),
		"grid", image.Pt(cols, rows), "textureSize", textureSize)

	img := image.NewGray(image.Rect(0, 0, textureSize, textureSize))
	grid := NewGridAllocator(tileW, tileH, cfg.Margin, cols, rows)
	glyphs := make(map[rune]metrics.Glyph, len(runes))

	for _, r := range runes {
		cell, ok := grid.Allocate()
		if !ok {
			return nil, ErrGridFull
		}
		glyphs[r] = bakeGlyph(img, face, r, cell)
	}

	atlas := &Atlas{
		Family:  familyName(f),
		Metrics: metrics.New(textureSize, float64(face.Metrics().Height.Floor()), glyphs),
		Image:   img,
	}
	fontatlas.Logger().Debug("builder: atlas baked",
		"family", atlas.Family, "glyphs", len(glyphs), "lineGap", atlas.Metrics.LineGap)
	return atlas, nil
}

// bakeGlyph draws r into cell and returns its metrics. The glyph's pixel
// box (its bounds rounded outwards) is placed at the cell's top-left corner
// and clipped to the cell.
func bakeGlyph(dst *image.Gray, face font.Face, r rune, cell image.Rectangle) metrics.Glyph {
	b, advance, ok := face.GlyphBounds(r)
	if !ok {
		fontatlas.Logger().Warn("builder: no bounds for glyph", "rune", fmt.Sprintf("%U", r))
		return metrics.Glyph{AtlasX: cell.Min.X, AtlasY: cell.Min.Y}
	}
	minX, minY := b.Min.X.Floor(), b.Min.Y.Floor()
	w := min(b.Max.X.Ceil()-minX, cell.Dx())
	h := min(b.Max.Y.Ceil()-minY, cell.Dy())

	dot := fixed.P(cell.Min.X-minX, cell.Min.Y-minY)
	if dr, mask, maskp, _, ok := face.Glyph(dot, r); ok {
		clipped := dr.Intersect(cell)
		if !clipped.Empty() {
			draw.DrawMask(dst, clipped, image.White, image.Point{}, mask, maskp.Add(clipped.Min.Sub(dr.Min)), draw.Over)
		}
	}

	return metrics.Glyph{
		Left:    float64(minX),
		Top:     float64(-minY), // bounds are y-down, Top is y-up
		Width:   float64(max(w, 0)),
		Height:  float64(max(h, 0)),
		Advance: float64(advance.Floor()),
		AtlasX:  cell.Min.X,
		AtlasY:  cell.Min.Y,
	}
}

// selectRunes returns the sorted, de-duplicated code points to bake.
func selectRunes(fontData []byte, cfg Config) ([]rune, error) {
	runes := append(slices.Clone(cfg.Runes), metrics.Space)
	slices.Sort(runes)
	runes = slices.Compact(runes)

	if !cfg.SkipMissing {
		return runes, nil
	}

	face, err := gotext.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("builder: failed to read cmap: %w", err)
	}
	return slices.DeleteFunc(runes, func(r rune) bool {
		if r == metrics.Space {
			return false
		}
		if _, ok := face.NominalGlyph(r); ok {
			return false
		}
		fontatlas.Logger().Debug("builder: skipping unmapped code point", "rune", fmt.Sprintf("%U", r))
		return true
	}), nil
}

// familyName returns the font family name, or "" if the font has none.
func familyName(f *opentype.Font) string {
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// nextPowerOfTwo returns the smallest power of two >= v, for v >= 1.
func nextPowerOfTwo(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}

// WritePNG encodes the atlas image as PNG.
func (a *Atlas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, a.Image); err != nil {
		return fmt.Errorf("builder: encode atlas image: %w", err)
	}
	return nil
}

// WriteMetrics writes the atlas description document.
func (a *Atlas) WriteMetrics(w io.Writer) error {
	return metrics.Encode(w, a.Metrics)
}

// SaveFiles writes the atlas description to jsonPath and the image to
// pngPath.
func (a *Atlas) SaveFiles(jsonPath, pngPath string) error {
	if err := metrics.SaveFile(jsonPath, a.Metrics); err != nil {
		return err
	}

	out, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("builder: %w", err)
	}
	if err := a.WritePNG(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("builder: %w", err)
	}
	return nil
}
