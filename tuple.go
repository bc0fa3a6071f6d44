package stimulus

import (
	"fmt"
	"strconv"

	gl "github.com/rustyoz/genericlexer"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected number, got %q", ErrMalformedPath, i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedPath, i.Value, err)
	}
	return n, nil
}

func parseTuple(l *gl.Lexer) (Tuple, error) {
	var t Tuple

	l.ConsumeWhiteSpace()
	n, err := parseNumber(l.NextItem())
	if err != nil {
		return t, err
	}
	t[0] = n

	if l.PeekItem().Type == gl.ItemWSP || l.PeekItem().Type == gl.ItemComma {
		l.NextItem()
	}
	l.ConsumeWhiteSpace()
	n, err = parseNumber(l.NextItem())
	if err != nil {
		return t, err
	}
	t[1] = n
	return t, nil
}
