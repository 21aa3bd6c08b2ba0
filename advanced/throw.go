package advanced

import "github.com/pkg/errors"

// Threading errors up and down the recursive splitting during decomposition
// would add a lot of noise. Instead, we use panics, and the public API recovers
// to convert to an error.

type GeometryError struct {
	err error
}

func (e GeometryError) Error() string { return e.err.Error() }

func (e GeometryError) Unwrap() error { return e.err }

// Panic with a GeometryError wrapping one of the error kinds.
func fatalf(kind error, format string, args ...interface{}) {
	panic(GeometryError{errors.Wrapf(kind, format, args...)})
}

// Convert a recovered GeometryError back into an error. Any other panic is a
// real bug and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
