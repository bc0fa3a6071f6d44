// Command stimvideo renders an eye-tracking stimulus curve into an MJPEG
// video, one frame per sampled point, plus a sidecar motion path JSON.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gazepath/stimulus"
	"github.com/gazepath/stimulus/render"
)

func main() {
	var (
		in      = flag.String("in", "curves/curve_8.svg", "input curve SVG file")
		outDir  = flag.String("out", "results", "output directory")
		fps     = flag.Int("fps", 30, "video frame rate")
		tpf     = flag.Float64("tpf", 0.6, "time per frame factor, larger is slower")
		width   = flag.Int("width", 1000, "frame width")
		height  = flag.Int("height", 800, "frame height")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		stimulus.SetLogger(slog.Default())
	}

	curve, err := stimulus.LoadCurveFile(*in)
	if err != nil {
		log.Fatalf("load %s: %v", *in, err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfg := render.DefaultVideoConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.FPS = int32(*fps)
	cfg.TimePerFrame = *tpf

	name := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
	points, err := render.NewVideoSession(curve.Model, cfg).Render(*outDir, name)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("wrote %d frames to %s", len(points), filepath.Join(*outDir, name+".avi"))
}
