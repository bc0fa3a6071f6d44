package stimulus

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// parseTransform interprets an SVG transform attribute. The supported
// forms are the ones vector tools emit on exported curves: matrix,
// translate and scale.
func parseTransform(raw string) (mt.Transform, error) {
	l, _ := gl.Lex("transform", raw)
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS, gl.ItemError:
			return mt.Identity(), fmt.Errorf("%w: no usable transform in %q", ErrMalformedPath, raw)
		case gl.ItemWord:
			switch i.Value {
			case "matrix":
				return parseMatrix(l)
			case "translate":
				return parseTranslate(l)
			case "scale":
				return parseScale(l)
			default:
				return mt.Identity(), fmt.Errorf("%w: unsupported transform %q", ErrMalformedPath, i.Value)
			}
		}
	}
}

// parseTransformArgs consumes a parenthesized, comma- or
// whitespace-separated number list.
func parseTransformArgs(l *gl.Lexer) ([]float64, error) {
	l.ConsumeWhiteSpace()
	if i := l.NextItem(); i.Type != gl.ItemParan {
		return nil, fmt.Errorf("%w: expected opening parenthesis, got %q", ErrMalformedPath, i.Value)
	}
	var ns []float64
	for {
		l.ConsumeWhiteSpace()
		l.ConsumeComma()
		l.ConsumeWhiteSpace()
		i := l.PeekItem()
		if i.Type != gl.ItemNumber {
			break
		}
		n, err := parseNumber(l.NextItem())
		if err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	if i := l.NextItem(); i.Type != gl.ItemParan {
		return nil, fmt.Errorf("%w: expected closing parenthesis, got %q", ErrMalformedPath, i.Value)
	}
	return ns, nil
}

func parseMatrix(l *gl.Lexer) (mt.Transform, error) {
	ns, err := parseTransformArgs(l)
	if err != nil {
		return mt.Identity(), err
	}
	if len(ns) != 6 {
		return mt.Identity(), fmt.Errorf("%w: matrix needs 6 numbers, got %d", ErrMalformedPath, len(ns))
	}
	var t mt.Transform
	t[0][0] = ns[0]
	t[1][0] = ns[1]
	t[0][1] = ns[2]
	t[1][1] = ns[3]
	t[0][2] = ns[4]
	t[1][2] = ns[5]
	t[2][2] = 1
	return t, nil
}

func parseTranslate(l *gl.Lexer) (mt.Transform, error) {
	ns, err := parseTransformArgs(l)
	if err != nil {
		return mt.Identity(), err
	}
	if len(ns) != 1 && len(ns) != 2 {
		return mt.Identity(), fmt.Errorf("%w: translate needs 1 or 2 numbers, got %d", ErrMalformedPath, len(ns))
	}
	t := mt.Identity()
	t[0][2] = ns[0]
	if len(ns) == 2 {
		t[1][2] = ns[1]
	}
	return t, nil
}

func parseScale(l *gl.Lexer) (mt.Transform, error) {
	ns, err := parseTransformArgs(l)
	if err != nil {
		return mt.Identity(), err
	}
	if len(ns) != 1 && len(ns) != 2 {
		return mt.Identity(), fmt.Errorf("%w: scale needs 1 or 2 numbers, got %d", ErrMalformedPath, len(ns))
	}
	t := mt.Identity()
	t[0][0] = ns[0]
	t[1][1] = ns[0]
	if len(ns) == 2 {
		t[1][1] = ns[1]
	}
	return t, nil
}
