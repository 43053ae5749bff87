// Command fbatlas bakes a TrueType or OpenType font into a bitmap atlas:
// a PNG coverage image and the JSON document describing every glyph in it.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/builder"
)

func main() {
	cfg := builder.DefaultConfig()
	var (
		columns     = flag.Int("columns", cfg.Columns, "glyph cells per atlas row")
		margin      = flag.Int("margin", cfg.Margin, "empty pixels around every cell")
		skipMissing = flag.Bool("skip-missing", false, "omit code points the font does not map")
		verbose     = flag.Bool("v", false, "log atlas layout details")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: fbatlas [flags] font.ttf size out.json out.png\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 4 {
		flag.Usage()
		os.Exit(2)
	}
	fontPath, sizeArg, jsonPath, pngPath := flag.Arg(0), flag.Arg(1), flag.Arg(2), flag.Arg(3)

	if *verbose {
		fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	size, err := strconv.Atoi(sizeArg)
	if err != nil {
		log.Fatalf("Invalid size %q: %v", sizeArg, err)
	}
	cfg.Size = size
	cfg.Columns = *columns
	cfg.Margin = *margin
	cfg.SkipMissing = *skipMissing

	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Fatalf("Failed to read font: %v", err)
	}

	atlas, err := builder.Build(data, cfg)
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}
	if err := atlas.SaveFiles(jsonPath, pngPath); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Atlas saved to %s and %s (%d glyphs, %dx%d)\n",
		jsonPath, pngPath, atlas.Metrics.Len(), atlas.Metrics.TextureSize, atlas.Metrics.TextureSize)
}
