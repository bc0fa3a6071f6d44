package stimulus

import (
	"fmt"

	gl "github.com/rustyoz/genericlexer"
)

// pathDescriptionParser walks a lexed path description and collects
// typed nodes in source order.
type pathDescriptionParser struct {
	lex   gl.Lexer
	moved bool
	nodes []PathNode
}

// ParsePathNodes interprets a path description (the "d" attribute of an
// SVG path element) and returns its node sequence in source order. The
// supported grammar is the absolute subset emitted by vector tools for
// plain curves: one move-to, line-to and cubic-curve-to commands, and an
// optional close-path marker. Coordinates are taken verbatim; applying
// transforms is the loader's business.
//
// ParsePathNodes is a pure function: it holds no state across calls and
// the same input always yields the same nodes.
func ParsePathNodes(d string) ([]PathNode, error) {
	pdp := &pathDescriptionParser{}
	l, _ := gl.Lex("path", d)
	pdp.lex = *l
	for {
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("%w: %s", ErrMalformedPath, i.Value)
		case i.Type == gl.ItemEOS:
			if len(pdp.nodes) == 0 {
				return nil, fmt.Errorf("%w: empty path description", ErrMalformedPath)
			}
			if err := validateNodeGrouping(pdp.nodes); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPath, err)
			}
			return pdp.nodes, nil
		case i.Type == gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return nil, err
			}
		case i.Type == gl.ItemNumber || i.Type == gl.ItemComma:
			return nil, fmt.Errorf("%w: stray %q outside any command",
				ErrMalformedPath, i.Value)
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	switch i.Value {
	case "M":
		return pdp.parseMoveToAbs()
	case "L":
		return pdp.parseLineToAbs()
	case "C":
		return pdp.parseCurveToAbs()
	case "z", "Z":
		return pdp.parseClose()
	}
	// Relative commands, H/V shorthands, arcs and quadratics are outside
	// the supported grammar.
	return fmt.Errorf("%w: unsupported command %q", ErrMalformedPath, i.Value)
}

func (pdp *pathDescriptionParser) parseMoveToAbs() error {
	if pdp.moved {
		return fmt.Errorf("%w: more than one move-to", ErrMalformedPath)
	}
	t, err := parseTuple(&pdp.lex)
	if err != nil {
		return fmt.Errorf("move-to: %w", err)
	}
	pdp.moved = true
	pdp.nodes = append(pdp.nodes, PathNode{Kind: Anchor, X: t[0], Y: t[1]})

	// Trailing coordinate pairs after a move-to are implicit line-tos.
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("move-to: %w", err)
		}
		pdp.nodes = append(pdp.nodes, PathNode{Kind: Anchor, X: t[0], Y: t[1]})
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nil
}

func (pdp *pathDescriptionParser) parseLineToAbs() error {
	if !pdp.moved {
		return fmt.Errorf("%w: line-to before move-to", ErrMalformedPath)
	}
	var tuples []Tuple
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("line-to: %w", err)
		}
		tuples = append(tuples, t)
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	if len(tuples) == 0 {
		return fmt.Errorf("%w: line-to with no coordinates", ErrMalformedPath)
	}
	for _, t := range tuples {
		pdp.nodes = append(pdp.nodes, PathNode{Kind: Anchor, X: t[0], Y: t[1]})
	}
	return nil
}

func (pdp *pathDescriptionParser) parseCurveToAbs() error {
	if !pdp.moved {
		return fmt.Errorf("%w: curve-to before move-to", ErrMalformedPath)
	}
	var tuples []Tuple
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(&pdp.lex)
		if err != nil {
			return fmt.Errorf("curve-to: %w", err)
		}
		tuples = append(tuples, t)
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	// Each cubic takes two control tuples and one end anchor. A curve-to
	// may chain several cubics back to back.
	if len(tuples) == 0 || len(tuples)%3 != 0 {
		return fmt.Errorf("%w: curve-to needs coordinate triples, got %d tuples",
			ErrMalformedPath, len(tuples))
	}
	for j := 0; j < len(tuples)/3; j++ {
		pdp.nodes = append(pdp.nodes,
			PathNode{Kind: Control, X: tuples[j*3][0], Y: tuples[j*3][1]},
			PathNode{Kind: Control, X: tuples[j*3+1][0], Y: tuples[j*3+1][1]},
			PathNode{Kind: Anchor, X: tuples[j*3+2][0], Y: tuples[j*3+2][1]},
		)
	}
	return nil
}

// parseClose consumes the close-path marker. The sampled stimulus never
// loops back on itself, so the marker contributes no node.
func (pdp *pathDescriptionParser) parseClose() error {
	pdp.lex.ConsumeWhiteSpace()
	return nil
}
