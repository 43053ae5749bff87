// Package builder bakes a TrueType or OpenType font into a bitmap atlas.
//
// The atlas is a square grayscale image whose side is a power of two. Glyph
// bitmaps are placed on a regular grid of cells sized to the font bounding
// box, so every glyph fits its cell. The returned metrics.FontMetrics
// describes each glyph for the layout package.
//
// # Usage
//
//	data, _ := os.ReadFile("Roboto-Medium.ttf")
//	cfg := builder.DefaultConfig()
//	cfg.Size = 48
//
//	atlas, err := builder.Build(data, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = atlas.SaveFiles("Roboto-Medium.json", "Roboto-Medium.png")
//
// Glyphs are rasterized with golang.org/x/image/font/opentype without
// hinting. Code point coverage for Config.SkipMissing is read from the
// font's cmap with github.com/go-text/typesetting.
package builder
