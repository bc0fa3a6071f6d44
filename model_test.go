package stimulus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustModel(t *testing.T, d string) *PathModel {
	t.Helper()
	nodes, err := ParsePathNodes(d)
	require.NoError(t, err)
	m, err := BuildPath(nodes)
	require.NoError(t, err)
	return m
}

func TestBuildPathGrouping(t *testing.T) {
	bad := [][]PathNode{
		{},
		{{Kind: Control}},
		{{Kind: Control}, {Kind: Control}, {Kind: Anchor}},
		{{Kind: Anchor}, {Kind: Control}},
		{{Kind: Anchor}, {Kind: Control}, {Kind: Anchor}},
		{{Kind: Anchor}, {Kind: Control}, {Kind: Control}},
		{{Kind: Anchor}, {Kind: Control}, {Kind: Control}, {Kind: Control}},
	}
	for i, nodes := range bad {
		_, err := BuildPath(nodes)
		require.ErrorIs(t, err, ErrSegmentGrouping, "case %d", i)
	}
}

func TestBuildPathSinglePoint(t *testing.T) {
	// A lone anchor is a degenerate but valid path.
	m, err := BuildPath([]PathNode{{Kind: Anchor, X: 3, Y: 4}})
	require.NoError(t, err)
	require.Equal(t, 0.0, m.Length())
	require.Equal(t, 0, m.Segments())
	require.Equal(t, Point{3, 4}, m.Start())
	require.Equal(t, Point{3, 4}, m.End())

	p, err := m.PositionAt(0.5)
	require.NoError(t, err)
	require.Equal(t, Point{3, 4}, p)
}

func TestLinearSegmentLength(t *testing.T) {
	m := mustModel(t, "M0,0 L3,4")
	require.Equal(t, 5.0, m.Length())
}

func TestLengthStableAcrossReparse(t *testing.T) {
	const d = "M0,0 C0,10 10,10 10,0"
	m1 := mustModel(t, d)
	m2 := mustModel(t, d)
	require.Equal(t, m1.Length(), m2.Length())
	// Longer than the chord, shorter than the control polygon.
	require.Greater(t, m1.Length(), 10.0)
	require.Less(t, m1.Length(), 30.0)
}

func TestLengthMatchesFlattenedPolyline(t *testing.T) {
	m := mustModel(t, "M0,0 C0,10 10,10 10,0")

	// Dense polyline reference. For a single segment the global
	// parameter equals the local one, so this flattens the raw cubic.
	const n = 4096
	var want float64
	prev, err := m.PositionAt(0)
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		p, err := m.PositionAt(float64(i) / n)
		require.NoError(t, err)
		want += math.Hypot(p.X-prev.X, p.Y-prev.Y)
		prev = p
	}
	require.InEpsilon(t, want, m.Length(), lengthTolerance)
}

func TestPositionAtEndpoints(t *testing.T) {
	m := mustModel(t, "M0,0 C0,10 10,10 10,0 L20,0")
	p, err := m.PositionAt(0)
	require.NoError(t, err)
	require.Equal(t, Point{0, 0}, p)

	p, err = m.PositionAt(1)
	require.NoError(t, err)
	require.Equal(t, Point{20, 0}, p)
}

func TestPositionAtOutOfRange(t *testing.T) {
	m := mustModel(t, "M0,0 L10,0")
	for _, bad := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := m.PositionAt(bad)
		require.ErrorIs(t, err, ErrParameterRange, "t=%v", bad)
	}
}

func TestGlobalParameterProportionalToLength(t *testing.T) {
	// Two colinear lines of unequal length. Halfway in t must be halfway
	// in arc length, not at the segment boundary.
	m := mustModel(t, "M0,0 L10,0 L40,0")
	require.Equal(t, 40.0, m.Length())

	p, err := m.PositionAt(0.5)
	require.NoError(t, err)
	require.InDelta(t, 20.0, p.X, 1e-9)
	require.Equal(t, 0.0, p.Y)

	p, err = m.PositionAt(0.25)
	require.NoError(t, err)
	require.InDelta(t, 10.0, p.X, 1e-9)
}

func TestPositionAtZeroLengthSpan(t *testing.T) {
	// A zero-length span between two real ones must not divide by zero.
	m := mustModel(t, "M0,0 L10,0 L10,0 L20,0")
	for _, tc := range []struct{ t, x float64 }{
		{0, 0}, {0.5, 10}, {0.75, 15}, {1, 20},
	} {
		p, err := m.PositionAt(tc.t)
		require.NoError(t, err)
		require.InDelta(t, tc.x, p.X, 1e-9, "t=%v", tc.t)
	}
}
