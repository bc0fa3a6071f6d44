package stimulus

import "errors"

// Error kinds reported by the library. Callers discriminate with
// errors.Is; the wrapped message carries the offending detail.
var (
	// ErrMalformedPath reports a path description that cannot be parsed:
	// bad numerics, an unsupported command, or a node sequence with no
	// usable shape.
	ErrMalformedPath = errors.New("malformed path description")

	// ErrSegmentGrouping reports a node sequence that does not decompose
	// into a leading anchor followed by line anchors or
	// control,control,anchor groups.
	ErrSegmentGrouping = errors.New("invalid segment grouping")

	// ErrParameterRange reports a curve parameter outside [0, 1].
	ErrParameterRange = errors.New("curve parameter out of range")

	// ErrInvalidStep reports a non-positive sampling step.
	ErrInvalidStep = errors.New("sampling step must be positive")

	// ErrPointsIO reports an unwritable motion path destination.
	ErrPointsIO = errors.New("cannot write motion path")

	// ErrPointsFormat reports malformed motion path data on read.
	ErrPointsFormat = errors.New("malformed motion path data")

	// ErrNoCurveFiles reports a curve directory with no SVG files in it.
	ErrNoCurveFiles = errors.New("no curve files found")

	// ErrNoCurvesLoaded reports a curve directory whose files were all
	// unloadable. Distinct from ErrNoCurveFiles: the input existed but
	// none of it could be processed.
	ErrNoCurvesLoaded = errors.New("no curves could be loaded")
)
