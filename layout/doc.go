// Package layout places text on a bitmap font atlas.
//
// Every output is derived from one traversal of the text, exposed as the
// iterator [All]:
//
//   - [TextExtent] folds the quads into a bounding box
//   - [Quads] collects them into a slice
//   - [Triangles] packs them into an unindexed triangle list
//
// Layout is pure: it performs no I/O, keeps no state between calls and
// never logs. Code points missing from the font fall back to the space
// glyph; that is not an error. The metrics argument must be non-nil and
// contain a space glyph (see metrics.FontMetrics.Validate).
//
// Only U+000A starts a new line. Text is read as UTF-8; invalid bytes
// decode to U+FFFD and fall back like any other unsupported code point.
package layout
