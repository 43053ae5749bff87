package layout

import (
	"iter"

	"github.com/gogpu/fontatlas/metrics"
)

// newline is the only code point that breaks a line.
const newline = '\n'

// Quad is one glyph rectangle in layout space together with the atlas
// rectangle it samples. Texture coordinates are normalized to [0, 1].
type Quad struct {
	XMin, XMax, YMin, YMax float64
	UMin, UMax, VMin, VMax float64
}

// All returns the quads of text in reading order: left to right within a
// line, lines top to bottom. Newlines produce no quad. Stopping the
// iteration early stops the traversal.
func All(m *metrics.FontMetrics, text string, opts Options) iter.Seq[Quad] {
	return func(yield func(Quad) bool) {
		walk(m, text, opts, yield)
	}
}

// walk is the single layout traversal shared by every output.
func walk(m *metrics.FontMetrics, text string, opts Options, yield func(Quad) bool) {
	ratio := opts.Alignment.ratio()

	var advances []float64
	var maxAdvance float64
	if ratio != 0 {
		advances = lineAdvances(m, text)
		for _, a := range advances {
			maxAdvance = max(maxAdvance, a)
		}
	}
	offset := func(line int) float64 {
		if ratio == 0 {
			return 0
		}
		return ratio * (maxAdvance - advances[line])
	}

	size := float64(m.TextureSize)
	line := 0
	x, y := offset(0), 0.0
	for _, r := range text {
		if r == newline {
			line++
			x = offset(line)
			y -= m.LineGap
			continue
		}

		g := m.Glyph(r)
		xMin := x + g.Left
		yMax := y + g.Top
		q := Quad{
			XMin: xMin,
			XMax: xMin + g.Width,
			YMin: yMax - g.Height,
			YMax: yMax,
			UMin: float64(g.AtlasX) / size,
			UMax: (float64(g.AtlasX) + g.Width) / size,
			// Atlas rows grow downwards, v grows upwards.
			VMin: (float64(g.AtlasY) + g.Height) / size,
			VMax: float64(g.AtlasY) / size,
		}
		if !yield(q) {
			return
		}
		x += g.Advance
	}
}

// lineAdvances returns the summed glyph advances of every line of text,
// including the (possibly empty) line after the last newline.
func lineAdvances(m *metrics.FontMetrics, text string) []float64 {
	advances := make([]float64, 0, 1)
	var advance float64
	for _, r := range text {
		if r == newline {
			advances = append(advances, advance)
			advance = 0
			continue
		}
		advance += m.Glyph(r).Advance
	}
	return append(advances, advance)
}

// GlyphCount returns the number of quads text lays out to: every code
// point except newlines, including those that fall back to space.
func GlyphCount(text string) int {
	n := 0
	for _, r := range text {
		if r != newline {
			n++
		}
	}
	return n
}
