package layout

import "github.com/gogpu/fontatlas/metrics"

// testTextureSize keeps every texture coordinate exactly representable.
const testTextureSize = 64

// testMetrics is a small atlas: A and B advance 10, space advances 5.
func testMetrics() *metrics.FontMetrics {
	return metrics.New(testTextureSize, 16, map[rune]metrics.Glyph{
		' ': {Advance: 5},
		'A': {Left: 1, Top: 12, Width: 8, Height: 12, Advance: 10, AtlasX: 2, AtlasY: 4},
		'B': {Left: 0.5, Top: 12, Width: 9, Height: 12, Advance: 10, AtlasX: 12, AtlasY: 4},
		'g': {Left: 1, Top: 8, Width: 7, Height: 11, Advance: 9, AtlasX: 24, AtlasY: 4},
	})
}

var allAlignments = []Alignment{AlignLeft, AlignCenter, AlignRight}

var sampleTexts = []string{
	"",
	"\n",
	"\n\n\n",
	"A",
	" ",
	"AB",
	"AB\nA",
	"A\nAB\n",
	"\nBAg\n\ngg",
	"unknown glyphs ~ é 日本",
	"A\xffB",
	"AB\r\nA",
}
