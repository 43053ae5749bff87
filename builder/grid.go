package builder

import "image"

// GridAllocator hands out fixed-size cells of an atlas in row-major order.
// Every glyph of a baked atlas gets one cell, whatever its actual size.
//
// Cells are cellW x cellH pixels and are separated by margin pixels; the
// grid itself starts margin pixels from the top-left corner.
type GridAllocator struct {
	cellW, cellH int
	margin       int
	cols, rows   int
	next         int
}

// NewGridAllocator creates a grid of cols x rows cells.
func NewGridAllocator(cellW, cellH, margin, cols, rows int) *GridAllocator {
	return &GridAllocator{
		cellW:  cellW,
		cellH:  cellH,
		margin: margin,
		cols:   max(cols, 1),
		rows:   max(rows, 1),
	}
}

// Allocate returns the next free cell.
// Returns an empty rectangle and false if the grid is full.
func (g *GridAllocator) Allocate() (image.Rectangle, bool) {
	if g.IsFull() {
		return image.Rectangle{}, false
	}

	col := g.next % g.cols
	row := g.next / g.cols
	g.next++

	x := g.margin + col*(g.cellW+g.margin)
	y := g.margin + row*(g.cellH+g.margin)
	return image.Rect(x, y, x+g.cellW, y+g.cellH), true
}

// Extent returns the width and height covered by the full grid, including
// the trailing margin.
func (g *GridAllocator) Extent() (w, h int) {
	return g.margin + g.cols*(g.cellW+g.margin), g.margin + g.rows*(g.cellH+g.margin)
}

// Reset clears all allocations.
func (g *GridAllocator) Reset() {
	g.next = 0
}

// Capacity returns the maximum number of cells that can be allocated.
func (g *GridAllocator) Capacity() int {
	return g.cols * g.rows
}

// Allocated returns the number of cells currently allocated.
func (g *GridAllocator) Allocated() int {
	return g.next
}

// Remaining returns the number of cells still available.
func (g *GridAllocator) Remaining() int {
	return g.Capacity() - g.next
}

// IsFull returns true if no more cells can be allocated.
func (g *GridAllocator) IsFull() bool {
	return g.next >= g.Capacity()
}
