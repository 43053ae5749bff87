// Command fblayout lays out text with a baked atlas and prints its extent.
// With -out it also writes the triangle buffer as little-endian float32s.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gogpu/fontatlas/layout"
	"github.com/gogpu/fontatlas/metrics"
)

func main() {
	var (
		metricsPath = flag.String("metrics", "", "atlas description JSON (required)")
		align       = flag.String("align", "left", "line alignment: left, center or right")
		showQuads   = flag.Bool("quads", false, "print every glyph quad")
		output      = flag.String("out", "", "write the triangle buffer to this file")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: fblayout -metrics font.json [flags] text\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *metricsPath == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	text := flag.Arg(0)

	alignment, err := layout.ParseAlignment(*align)
	if err != nil {
		log.Fatalf("Invalid alignment: %v", err)
	}
	opts := layout.Options{Alignment: alignment}

	m, err := metrics.LoadFile(*metricsPath)
	if err != nil {
		log.Fatalf("Failed to load metrics: %v", err)
	}

	ext := layout.TextExtent(m, text, opts)
	if ext.IsEmpty() {
		fmt.Println("extent: empty")
	} else {
		fmt.Printf("extent: x [%g, %g] y [%g, %g] size %gx%g\n",
			ext.XMin, ext.XMax, ext.YMin, ext.YMax, ext.Width(), ext.Height())
	}

	if *showQuads {
		for i, q := range layout.Quads(m, text, opts) {
			fmt.Printf("%3d: x [%g, %g] y [%g, %g] u [%.4f, %.4f] v [%.4f, %.4f]\n",
				i, q.XMin, q.XMax, q.YMin, q.YMax, q.UMin, q.UMax, q.VMin, q.VMax)
		}
	}

	if *output != "" {
		tris := layout.Triangles(m, text, opts)
		if err := os.WriteFile(*output, tris.Bytes(), 0o644); err != nil {
			log.Fatalf("Failed to write triangles: %v", err)
		}
		log.Printf("Triangles saved to %s (%d glyphs, %d vertices)\n", *output, tris.GlyphCount(), tris.VertexCount())
	}
}
