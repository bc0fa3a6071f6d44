// Command stimpoints samples a stimulus curve for interactive playback
// and writes the motion path JSON an on-screen renderer consumes.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gazepath/stimulus"
)

func main() {
	var (
		dir     = flag.String("curves", "curves", "directory of curve SVG files")
		num     = flag.Int("curve", 0, "curve number to sample")
		outDir  = flag.String("out", "results", "output directory")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		stimulus.SetLogger(slog.Default())
	}

	set, err := stimulus.LoadCurveDir(*dir)
	if err != nil {
		log.Fatalf("load curves: %v", err)
	}
	for _, f := range set.Failures {
		log.Printf("skipped %s: %v", f.File, f.Err)
	}
	if *num < 0 || *num >= len(set.Curves) {
		log.Fatalf("curve number %d out of range, have %d curves", *num, len(set.Curves))
	}

	model := set.Curves[*num].Model
	points, err := model.Sample(stimulus.InteractiveStep(model.Length()))
	if err != nil {
		log.Fatalf("sample: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}
	out := filepath.Join(*outDir, fmt.Sprintf("curve#%d_stimulus.json", *num))
	if err := points.WriteFile(out, false); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	log.Printf("wrote %d points to %s", len(points), out)
}
