package stimulus

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InteractiveStep returns the sampling step for on-screen playback: one
// sample per unit of arc length, so the marker advances one unit per
// drawing tick.
func InteractiveStep(length float64) float64 {
	return 1 / length
}

// VideoStep returns the sampling step for video rendering. timePerFrame
// stretches the traversal: larger values produce more frames and a
// slower-moving marker.
func VideoStep(length, timePerFrame float64) float64 {
	return 1 / (length * timePerFrame)
}

// Sample walks the curve from t=0 in increments of step and returns the
// visited positions in playback order, with indexes assigned as points
// are emitted. Sampling stops strictly before t reaches 1, so the end
// anchor itself is never emitted; callers that want a resting frame can
// append PositionAt(1).
//
// step must be positive (ErrInvalidStep otherwise). A degenerate path
// (zero segments or zero length) yields an empty motion path and no
// error. The result depends only on (model, step).
func (m *PathModel) Sample(step float64) (MotionPath, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	if len(m.segments) == 0 || m.total == 0 {
		return MotionPath{}, nil
	}
	// Accumulating t by repeated float64 addition drifts over the
	// thousands of steps a long curve takes; the decimal accumulator
	// keeps the grid exact so the point count never gains or loses a
	// step.
	inc := decimal.NewFromFloat(step)
	one := decimal.New(1, 0)
	var path MotionPath
	for t := decimal.Zero; t.Cmp(one) < 0; t = t.Add(inc) {
		p, err := m.PositionAt(t.InexactFloat64())
		if err != nil {
			return nil, err
		}
		path = append(path, SampledPoint{X: p.X, Y: p.Y, Idx: len(path)})
	}
	return path, nil
}
