package internal

import "fmt"

// A Violation is a triangle in a triangulation whose circumcircle strictly
// contains one of the input points. A triangle with no finite circumcircle is
// reported with HasCircle false, and Point left zero.
type Violation struct {
	Triangle  Triangle
	Circle    Circle
	HasCircle bool
	Point     Point
}

func (v Violation) String() string {
	if !v.HasCircle {
		return fmt.Sprintf("%s has no circumcircle", v.Triangle)
	}
	return fmt.Sprintf("%s circumcircle contains %s", v.Triangle, v.Point)
}

// Brute force check of the Delaunay property. Every circumcircle is tested
// against every point, using the same strict containment as the
// triangulation, so points on a circle are never violations.
func FindViolation(points []Point, triangles []Triangle) (Violation, bool) {
	for _, t := range triangles {
		circle, ok := t.Circumcircle()
		if !ok {
			return Violation{Triangle: t}, true
		}
		for _, p := range points {
			if circle.Contains(p) {
				return Violation{t, circle, true, p}, true
			}
		}
	}
	return Violation{}, false
}

func IsDelaunay(points []Point, triangles []Triangle) bool {
	_, found := FindViolation(points, triangles)
	return !found
}

// Find a vertex of the triangulation that isn't one of the input points. This
// catches leaks from the super triangle, and anything else invented along the
// way.
func FindForeignVertex(points []Point, triangles []Triangle) (Point, bool) {
	known := make(map[Point]struct{}, len(points))
	for _, p := range points {
		known[p] = struct{}{}
	}
	for _, t := range triangles {
		for _, v := range [3]Point{t.A, t.B, t.C} {
			if _, ok := known[v]; !ok {
				return v, true
			}
		}
	}
	return Point{}, false
}
