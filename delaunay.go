// Delaunay triangulation of point sets for Go.
//
// This package computes the Delaunay triangulation of an arbitrary finite set
// of points with the incremental Bowyer-Watson algorithm. Instead of a large
// finite bounding triangle, the triangulation starts from a triangle whose
// vertices are at infinity, so nearly collinear input doesn't need any
// particular bound to triangulate correctly.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type Edge = internal.Edge
type Circle = internal.Circle
type Triangle = internal.Triangle

// Triangulate a set of points. No point will be strictly inside the
// circumcircle of any of the returned triangles.
//
// Duplicate and collinear points are allowed. Fewer than three points, or
// points that all lie on one line, give no triangles. Every point must be
// finite; otherwise an error is returned.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	internal.MustBeFinite(points)
	return internal.Triangulate(points), nil
}

// Check that no point is strictly inside the circumcircle of any triangle.
func IsDelaunay(points []Point, triangles []Triangle) bool {
	return internal.IsDelaunay(points, triangles)
}
