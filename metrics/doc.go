// Package metrics holds the glyph metrics of a bitmap font atlas.
//
// A [FontMetrics] is built once, by a loader such as [Decode] or the
// builder package, and never changes afterwards. It can be shared by any
// number of goroutines without synchronization.
//
// Every table must contain the space glyph (U+0020). [FontMetrics.Glyph]
// substitutes it for any code point the table does not cover, which makes
// glyph resolution a total function over runes.
package metrics
