package render

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"path/filepath"

	"github.com/icza/mjpeg"

	"github.com/gazepath/stimulus"
)

// VideoConfig controls frame geometry and pacing of a rendered session.
type VideoConfig struct {
	Width  int
	Height int
	FPS    int32
	// TimePerFrame is the traversal speed factor: the sampling step is
	// 1/(length*TimePerFrame), so larger values produce more frames and
	// a slower marker.
	TimePerFrame float64
	Radius       float64
	Color        color.Color
}

// DefaultVideoConfig returns the stock session parameters.
func DefaultVideoConfig() VideoConfig {
	return VideoConfig{
		Width:        1000,
		Height:       800,
		FPS:          30,
		TimePerFrame: 0.6,
		Radius:       DefaultRadius,
		Color:        DefaultMarkerColor,
	}
}

// VideoSession renders one curve into an MJPEG AVI with a sidecar motion
// path JSON. Frame count equals motion path length; the sidecar carries
// the playback index of every frame.
type VideoSession struct {
	model *stimulus.PathModel
	cfg   VideoConfig
}

// NewVideoSession prepares a session for model.
func NewVideoSession(model *stimulus.PathModel, cfg VideoConfig) *VideoSession {
	return &VideoSession{model: model, cfg: cfg}
}

// Render samples the curve at the video step, writes <name>.avi and
// <name>.json under outDir, and returns the motion path it rendered. A
// degenerate curve yields an empty path, no files and no error.
func (s *VideoSession) Render(outDir, name string) (stimulus.MotionPath, error) {
	step := stimulus.VideoStep(s.model.Length(), s.cfg.TimePerFrame)
	points, err := s.model.Sample(step)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		stimulus.Logger().Warn("curve produced no frames", "length", s.model.Length())
		return points, nil
	}
	stimulus.Logger().Info("writing video",
		"frames", len(points), "length", s.model.Length(), "fps", s.cfg.FPS)

	aviPath := filepath.Join(outDir, name+".avi")
	aw, err := mjpeg.New(aviPath, int32(s.cfg.Width), int32(s.cfg.Height), s.cfg.FPS)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", aviPath, err)
	}
	var buf bytes.Buffer
	for _, p := range points {
		frame := NewFrame(s.cfg.Width, s.cfg.Height, p, s.cfg.Radius, s.cfg.Color)
		buf.Reset()
		if err := jpeg.Encode(&buf, frame.Image(), nil); err != nil {
			aw.Close()
			return nil, fmt.Errorf("encode frame %d: %w", p.Idx, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return nil, fmt.Errorf("append frame %d: %w", p.Idx, err)
		}
	}
	if err := aw.Close(); err != nil {
		return nil, fmt.Errorf("close video %s: %w", aviPath, err)
	}
	if err := points.WriteFile(filepath.Join(outDir, name+".json"), true); err != nil {
		return nil, err
	}
	return points, nil
}
