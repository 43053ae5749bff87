package layout

import (
	"math"

	"github.com/gogpu/fontatlas/metrics"
)

// Extent is the axis-aligned bounding box of a set of quads.
// The empty extent has XMin = YMin = +Inf and XMax = YMax = -Inf.
type Extent struct {
	XMin, XMax, YMin, YMax float64
}

// EmptyExtent returns the extent of no quads.
func EmptyExtent() Extent {
	return Extent{
		XMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMin: math.Inf(1),
		YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether e bounds nothing.
func (e Extent) IsEmpty() bool {
	return e.XMin > e.XMax || e.YMin > e.YMax
}

// Union returns the smallest extent containing e and q.
func (e Extent) Union(q Quad) Extent {
	return Extent{
		XMin: min(e.XMin, q.XMin),
		XMax: max(e.XMax, q.XMax),
		YMin: min(e.YMin, q.YMin),
		YMax: max(e.YMax, q.YMax),
	}
}

// Width returns XMax - XMin, or 0 for the empty extent.
func (e Extent) Width() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.XMax - e.XMin
}

// Height returns YMax - YMin, or 0 for the empty extent.
func (e Extent) Height() float64 {
	if e.IsEmpty() {
		return 0
	}
	return e.YMax - e.YMin
}

// Center returns the midpoint of e, or (0, 0) for the empty extent.
// Renderers subtract it to center a text block on the origin.
func (e Extent) Center() (x, y float64) {
	if e.IsEmpty() {
		return 0, 0
	}
	return (e.XMin + e.XMax) / 2, (e.YMin + e.YMax) / 2
}

// ExtentOf folds quads into their bounding box.
func ExtentOf(quads []Quad) Extent {
	e := EmptyExtent()
	for _, q := range quads {
		e = e.Union(q)
	}
	return e
}

// TextExtent lays out text and returns the bounding box of its quads, or
// the empty extent when text has no renderable code point.
func TextExtent(m *metrics.FontMetrics, text string, opts Options) Extent {
	e := EmptyExtent()
	walk(m, text, opts, func(q Quad) bool {
		e = e.Union(q)
		return true
	})
	return e
}
