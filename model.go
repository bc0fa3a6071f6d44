package stimulus

import (
	"fmt"
	"math"
	"sort"
)

// Point is a position on the curve in user units.
type Point struct {
	X float64
	Y float64
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// lengthTolerance bounds the relative arc-length error of the polyline
// flattening.
const lengthTolerance = 1e-3

// cubicSegment is one cubic Bezier span of an assembled path. A straight
// span is stored with both control points coinciding with its anchors
// and flagged linear so its length is the plain endpoint distance.
type cubicSegment struct {
	p0, p1, p2, p3 Point
	linear         bool
}

// eval evaluates the span at local parameter t. A linear span interpolates
// its endpoints directly so t stays proportional to traversed distance.
func (s cubicSegment) eval(t float64) Point {
	if s.linear {
		return Point{
			X: s.p0.X + (s.p3.X-s.p0.X)*t,
			Y: s.p0.Y + (s.p3.Y-s.p0.Y)*t,
		}
	}
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*s.p0.X + b*s.p1.X + c*s.p2.X + d*s.p3.X,
		Y: a*s.p0.Y + b*s.p1.Y + c*s.p2.Y + d*s.p3.Y,
	}
}

// arclen approximates the segment's length by flattening it into chords,
// doubling the chord count until the estimate settles within
// lengthTolerance.
func (s cubicSegment) arclen() float64 {
	if s.linear {
		return dist(s.p0, s.p3)
	}
	prev := s.flattenedLength(16)
	for n := 32; n <= 1024; n *= 2 {
		cur := s.flattenedLength(n)
		if cur == 0 || math.Abs(cur-prev) <= lengthTolerance*cur {
			return cur
		}
		prev = cur
	}
	return prev
}

func (s cubicSegment) flattenedLength(n int) float64 {
	var sum float64
	last := s.p0
	for i := 1; i <= n; i++ {
		p := s.eval(float64(i) / float64(n))
		sum += dist(last, p)
		last = p
	}
	return sum
}

// PathModel is an immutable ordered sequence of contiguous cubic
// segments with a memoized total arc length. Build one per source path;
// it is safe to share between goroutines since nothing mutates it after
// construction.
type PathModel struct {
	segments []cubicSegment
	cum      []float64 // cum[i] = arc length through segments[0..i]
	total    float64
	start    Point
}

// BuildPath assembles a node sequence into a PathModel. The sequence
// must satisfy the grouping rule validated by validateNodeGrouping;
// anything else returns ErrSegmentGrouping. Segment i starts where
// segment i-1 ended, so the model is continuous by construction.
func BuildPath(nodes []PathNode) (*PathModel, error) {
	if err := validateNodeGrouping(nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSegmentGrouping, err)
	}
	m := &PathModel{start: Point{nodes[0].X, nodes[0].Y}}
	cur := m.start
	for i := 1; i < len(nodes); {
		if nodes[i].Kind == Anchor {
			end := Point{nodes[i].X, nodes[i].Y}
			m.segments = append(m.segments, cubicSegment{p0: cur, p1: cur, p2: end, p3: end, linear: true})
			cur = end
			i++
			continue
		}
		c1 := Point{nodes[i].X, nodes[i].Y}
		c2 := Point{nodes[i+1].X, nodes[i+1].Y}
		end := Point{nodes[i+2].X, nodes[i+2].Y}
		m.segments = append(m.segments, cubicSegment{p0: cur, p1: c1, p2: c2, p3: end})
		cur = end
		i += 3
	}
	m.cum = make([]float64, len(m.segments))
	for i, s := range m.segments {
		m.total += s.arclen()
		m.cum[i] = m.total
	}
	return m, nil
}

// Length returns the total arc length, computed once at build time.
func (m *PathModel) Length() float64 { return m.total }

// Segments returns the number of cubic spans in the path.
func (m *PathModel) Segments() int { return len(m.segments) }

// Start returns the first anchor of the path.
func (m *PathModel) Start() Point { return m.start }

// End returns the final end anchor of the path.
func (m *PathModel) End() Point {
	if len(m.segments) == 0 {
		return m.start
	}
	return m.segments[len(m.segments)-1].p3
}

// PositionAt evaluates the path at a global parameter t in [0, 1]. The
// parameter is proportional to arc length traveled, not to segment
// count: t is mapped onto the owning segment by cumulative length and
// evaluated there with the local parameter. Without this mapping,
// stepping t uniformly would speed up through short segments and crawl
// through long ones.
//
// t outside [0, 1] returns ErrParameterRange. t == 1 resolves to the
// final end anchor exactly. A degenerate path (no segments, or zero
// total length) reduces to its single position.
func (m *PathModel) PositionAt(t float64) (Point, error) {
	if t < 0 || t > 1 || math.IsNaN(t) {
		return Point{}, fmt.Errorf("%w: t=%v", ErrParameterRange, t)
	}
	if len(m.segments) == 0 || m.total == 0 {
		return m.start, nil
	}
	if t == 1 {
		return m.End(), nil
	}
	target := t * m.total
	idx := sort.SearchFloat64s(m.cum, target)
	if idx >= len(m.segments) {
		idx = len(m.segments) - 1
	}
	var begin float64
	if idx > 0 {
		begin = m.cum[idx-1]
	}
	segLen := m.cum[idx] - begin
	var u float64
	if segLen > 0 {
		u = (target - begin) / segLen
	}
	return m.segments[idx].eval(u), nil
}
