package advanced

import "github.com/pkg/errors"

// Error kinds. These are always returned wrapped with context, so match them
// with errors.Is.
var (
	// Operating on a polygon or hull with no vertices.
	ErrInvalidState = errors.New("invalid state")
	// Fewer than three distinct points, or all points collinear.
	ErrDegenerateInput = errors.New("degenerate input")
	// The edge tracer could not close a loop.
	ErrSelfIntersectionUnresolved = errors.New("self intersection unresolved")
	// A reflex vertex has no legal diagonal. This means the input was not a
	// simple polygon, and is never recoverable by retrying.
	ErrNoValidSplit = errors.New("no valid split")
	// Malformed hull shape file.
	ErrParse = errors.New("parse error")
)
