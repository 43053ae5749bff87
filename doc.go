// Package fontatlas lays out text against a bitmap font atlas and produces
// GPU-ready geometry.
//
// # Overview
//
// A font atlas is a single square bitmap holding one sub-rectangle per
// glyph, described by a [metrics.FontMetrics] table. The layout engine walks
// a string against that table and emits one textured quad per code point,
// which can be folded into a bounding extent, collected into a list, or
// packed into an unindexed triangle list.
//
// # Quick Start
//
//	m, err := metrics.LoadFile("Roboto-Medium.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := layout.Options{Alignment: layout.AlignCenter}
//
//	ext := layout.TextExtent(m, "Hello\nworld", opts)
//	if !ext.IsEmpty() {
//	    tris := layout.Triangles(m, "Hello\nworld", opts)
//	    upload(tris.Bytes(), tris.VertexCount())
//	}
//
// # Packages
//
//   - metrics: immutable glyph tables and the JSON atlas description format
//   - layout: the layout engine (extent, quads, triangle buffer)
//   - builder: bakes TrueType/OpenType fonts into an atlas image + metrics
//   - meshcache: memoizes meshes for hosts that redraw every frame
//
// # Coordinate System
//
// Layout space is y-up: line 0 sits at y = 0 and every following line is
// LineGap lower. Texture coordinates are normalized to [0, 1]. A quad's top
// edge samples atlas row AtlasY and its bottom edge row AtlasY+Height, so
// VMin > VMax for every glyph with a non-zero height.
//
// # Logging
//
// The root package owns a [log/slog] logger shared by the sub-packages.
// It is silent by default; see [SetLogger].
package fontatlas

// Version is the current version of the library.
const Version = "0.1.0"
