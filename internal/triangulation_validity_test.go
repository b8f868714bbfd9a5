package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"os"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. No input point lies strictly inside any triangle's circumcircle.
// 2. Every vertex of every triangle is an input point.
// 3. No triangle has zero area.
//
// Set DELAUNAY_DRAW=1 to print the failing triangulation in the terminal.
func AssertValidTriangulation(t *testing.T, points []Point, triangles []Triangle) {
	t.Helper()

	if violation, found := FindViolation(points, triangles); found {
		if os.Getenv("DELAUNAY_DRAW") != "" {
			dbgDraw(points, triangles, []Triangle{violation.Triangle}, 10)
		}
		require.Failf(t, "not a Delaunay triangulation", "%s\n%s", violation, spew.Sdump(violation))
	}

	if v, found := FindForeignVertex(points, triangles); found {
		require.Failf(t, "foreign vertex", "vertex %s is not an input point", v)
	}

	for _, tri := range triangles {
		require.True(t, tri.IsValid(), "degenerate triangle: %s", tri)
	}
}
