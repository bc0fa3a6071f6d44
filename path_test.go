package stimulus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type parseTest struct {
	description string
	d           string
	kinds       []NodeKind
	xs          []float64
	ys          []float64
}

var parseTests = []parseTest{
	{
		"single cubic segment",
		"M0,0 C0,10 10,10 10,0",
		[]NodeKind{Anchor, Control, Control, Anchor},
		[]float64{0, 0, 10, 10},
		[]float64{0, 10, 10, 0},
	},
	{
		"space separated coordinates",
		"M 0 0 C 0 10 10 10 10 0",
		[]NodeKind{Anchor, Control, Control, Anchor},
		[]float64{0, 0, 10, 10},
		[]float64{0, 10, 10, 0},
	},
	{
		"line segments",
		"M0,0 L10,0 L10,10",
		[]NodeKind{Anchor, Anchor, Anchor},
		[]float64{0, 10, 10},
		[]float64{0, 0, 10},
	},
	{
		"multiple pairs in one line-to",
		"M0,0 L10,0 10,10",
		[]NodeKind{Anchor, Anchor, Anchor},
		[]float64{0, 10, 10},
		[]float64{0, 0, 10},
	},
	{
		"comma separated pairs in one line-to",
		"M0,0 L1,1,2,2",
		[]NodeKind{Anchor, Anchor, Anchor},
		[]float64{0, 1, 2},
		[]float64{0, 1, 2},
	},
	{
		"comma and space separated pairs in one line-to",
		"M0,0 L1,1, 2,2",
		[]NodeKind{Anchor, Anchor, Anchor},
		[]float64{0, 1, 2},
		[]float64{0, 1, 2},
	},
	{
		"comma separated pairs after move",
		"M0,0,5,5",
		[]NodeKind{Anchor, Anchor},
		[]float64{0, 5},
		[]float64{0, 5},
	},
	{
		"mixed lines and curves with close marker",
		"M0,0 L5,5 C5,10 10,10 10,5 Z",
		[]NodeKind{Anchor, Anchor, Control, Control, Anchor},
		[]float64{0, 5, 5, 10, 10},
		[]float64{0, 5, 10, 10, 5},
	},
	{
		"chained cubics in one curve-to",
		"M0,0 C0,10 10,10 10,0 10,20 20,20 20,0",
		[]NodeKind{Anchor, Control, Control, Anchor, Control, Control, Anchor},
		[]float64{0, 0, 10, 10, 10, 20, 20},
		[]float64{0, 10, 10, 0, 20, 20, 0},
	},
	{
		"implicit line-to after move",
		"M0,0 10,10",
		[]NodeKind{Anchor, Anchor},
		[]float64{0, 10},
		[]float64{0, 10},
	},
}

func TestParsePathNodes(t *testing.T) {
	for _, test := range parseTests {
		nodes, err := ParsePathNodes(test.d)
		require.NoError(t, err, test.description)
		require.Len(t, nodes, len(test.kinds), test.description)

		for i, kind := range test.kinds {
			if nodes[i].Kind != kind {
				t.Fatalf("expected node %d for test %s to be %s, but was %s",
					i, test.description, kind, nodes[i].Kind)
			}
		}
		for i, x := range test.xs {
			if nodes[i].X != x {
				t.Fatalf("expected X coordinate %d for test %s to be %f, but was %f",
					i, test.description, x, nodes[i].X)
			}
		}
		for i, y := range test.ys {
			if nodes[i].Y != y {
				t.Fatalf("expected Y coordinate %d for test %s to be %f, but was %f",
					i, test.description, y, nodes[i].Y)
			}
		}
	}
}

func TestParsePathNodesDeterministic(t *testing.T) {
	const d = "M0,0 C0,10 10,10 10,0"
	a, err := ParsePathNodes(d)
	require.NoError(t, err)
	b, err := ParsePathNodes(d)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestParsePathNodesMalformed(t *testing.T) {
	for _, d := range []string{
		"",                     // nothing at all
		"M",                    // move-to with no coordinates
		"M0,0 L",               // line-to with no coordinates
		"M0,0 C0,10 10,10 10",  // five numbers in a curve-to
		"M0,0 C0,10 10,10",     // two tuples, not a multiple of three
		"M0,0 C",               // curve-to with no coordinates
		"M0,0 Q5,5 10,0",       // quadratics unsupported
		"M0,0 A5 5 0 0 1 10,0", // arcs unsupported
		"M0,0 l10,0",           // relative commands unsupported
		"M0,0 H10",             // shorthand lines unsupported
		"L0,0 10,10",           // line-to before move-to
		"C0,10 10,10 10,0",     // curve-to before move-to
		"M0,0 M5,5",            // second move-to
		"5,5 M0,0",             // coordinates before any command
		"M0,0 Z 5,5",           // coordinates after the close marker
	} {
		_, err := ParsePathNodes(d)
		require.Error(t, err, "input %q", d)
		require.ErrorIs(t, err, ErrMalformedPath, "input %q", d)
	}
}
