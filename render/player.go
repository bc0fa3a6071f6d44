package render

import (
	"context"
	"time"

	"github.com/gazepath/stimulus"
)

// Drawer receives one stimulus position per playback tick. A GUI window,
// a terminal preview or a test can all sit behind it.
type Drawer interface {
	Draw(p stimulus.SampledPoint)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(p stimulus.SampledPoint)

func (f DrawerFunc) Draw(p stimulus.SampledPoint) { f(p) }

// DefaultInterval is the wall-clock cadence between points.
const DefaultInterval = 10 * time.Millisecond

// Player replays a motion path against a Drawer at a fixed cadence. It
// never resamples: the path is consumed exactly once, in playback order.
type Player struct {
	Path     stimulus.MotionPath
	Interval time.Duration // defaults to DefaultInterval when <= 0
}

// Play hands each point to d in order, pausing Interval between points.
// It returns ctx.Err() if the context ends before playback does.
func (pl *Player) Play(ctx context.Context, d Drawer) error {
	interval := pl.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for _, p := range pl.Path {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Draw(p)
		}
	}
	return nil
}
