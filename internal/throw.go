package internal

import (
	"math"

	"github.com/pkg/errors"
)

// The engine itself never fails: degenerate input just produces fewer
// triangles. The only thing callers can get wrong is handing it a point that
// isn't finite, which only the super triangle may have. That check panics with
// a TriangulateError from deep inside the input walk, and the public API
// recovers it into an error.

type TriangulateError error

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError(errors.Errorf(format, args...)))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}

// Panic if any input point has an infinite or NaN coordinate.
func MustBeFinite(points []Point) {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			fatalf("point %d is not a number: %s", i, p)
		}
		if !p.IsFinite() {
			fatalf("point %d is not finite: %s", i, p)
		}
	}
}
