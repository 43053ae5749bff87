package layout

import "github.com/gogpu/fontatlas/metrics"

// Quads lays out text and returns its quads in reading order. Useful for
// hit-testing or custom mesh assembly.
func Quads(m *metrics.FontMetrics, text string, opts Options) []Quad {
	quads := make([]Quad, 0, GlyphCount(text))
	walk(m, text, opts, func(q Quad) bool {
		quads = append(quads, q)
		return true
	})
	return quads
}
