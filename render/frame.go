// Package render turns sampled motion paths into pixels: offline video
// frames for the batch mode and paced playback for interactive
// consumers.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gazepath/stimulus"
)

// DefaultRadius is the marker radius in pixels.
const DefaultRadius = 7.0

// DefaultMarkerColor is the stimulus marker fill.
var DefaultMarkerColor = color.RGBA{R: 0xff, A: 0xff}

// Frame is one rendered video frame: a white background with a filled
// circular marker at a single sampled stimulus position.
type Frame struct {
	img *image.RGBA
}

// NewFrame renders the marker for p into a w by h frame.
func NewFrame(w, h int, p stimulus.SampledPoint, radius float64, c color.Color) *Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	fillCircle(img, p.X, p.Y, radius, c)
	return &Frame{img: img}
}

// Image returns the rendered frame.
func (f *Frame) Image() *image.RGBA { return f.img }

// kappa is the control-point offset approximating a quarter circle with
// one cubic.
const kappa = 0.5522847498307933

func fillCircle(dst *image.RGBA, cx, cy, r float64, c color.Color) {
	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	x, y := float32(cx), float32(cy)
	fr := float32(r)
	k := float32(r * kappa)
	z.MoveTo(x+fr, y)
	z.CubeTo(x+fr, y+k, x+k, y+fr, x, y+fr)
	z.CubeTo(x-k, y+fr, x-fr, y+k, x-fr, y)
	z.CubeTo(x-fr, y-k, x-k, y-fr, x, y-fr)
	z.CubeTo(x+k, y-fr, x+fr, y-k, x+fr, y)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
