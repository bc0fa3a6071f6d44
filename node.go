package stimulus

import "fmt"

// NodeKind tells the path model which role a node plays when segments
// are assembled.
type NodeKind int

const (
	// Anchor is an on-curve point the path passes through exactly.
	Anchor NodeKind = iota
	// Control is an off-curve point shaping a cubic segment. Controls
	// only occur in pairs between two anchors.
	Control
)

func (k NodeKind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case Control:
		return "control"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// PathNode is one point of an assembled path together with its role.
// Node lists are produced by ParsePathNodes and consumed by BuildPath;
// they are not modified afterwards.
type PathNode struct {
	Kind NodeKind
	X    float64
	Y    float64
}

// validateNodeGrouping checks that nodes decompose into one leading
// anchor followed by any number of bare anchors (line segments) or
// control,control,anchor groups (cubic segments).
func validateNodeGrouping(nodes []PathNode) error {
	if len(nodes) == 0 {
		return fmt.Errorf("empty node sequence")
	}
	if nodes[0].Kind != Anchor {
		return fmt.Errorf("path must start with an anchor, got %s", nodes[0].Kind)
	}
	for i := 1; i < len(nodes); {
		switch nodes[i].Kind {
		case Anchor:
			i++
		case Control:
			if i+2 >= len(nodes) || nodes[i+1].Kind != Control || nodes[i+2].Kind != Anchor {
				return fmt.Errorf("dangling control group at node %d", i)
			}
			i += 3
		default:
			return fmt.Errorf("unknown node kind at node %d", i)
		}
	}
	return nil
}
