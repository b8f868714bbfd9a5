package internal

// Bowyer-Watson incremental Delaunay triangulation.
//
// Points are inserted one at a time. Each insertion finds the "bad" triangles
// whose circumcircle contains the new point, removes them, and fans the
// boundary of the hole they leave out to the new point. The triangulation
// starts from a super triangle with vertices at infinity (see SuperTriangle),
// and everything still touching it is dropped at the end.
//
// Reference: https://en.wikipedia.org/wiki/Bowyer%E2%80%93Watson_algorithm

// A triangle in the working set, along with its circumcircle. Triangles never
// change once created, so the circle is computed exactly once. If finite is
// false, the triangle touches infinity and containment goes through
// HalfPlaneContains.
type workingTriangle struct {
	Triangle
	circle Circle
	finite bool
}

func newWorkingTriangle(t Triangle) workingTriangle {
	circle, finite := t.Circumcircle()
	return workingTriangle{t, circle, finite}
}

func (w workingTriangle) contains(p Point) bool {
	if w.finite {
		return w.circle.Contains(p)
	}
	return HalfPlaneContains(w.Triangle, p)
}

// Triangulate the points. The result contains no triangle touching the super
// triangle. Fewer than three points, or points that are all collinear, give an
// empty result. Duplicate points are allowed.
//
// Input order matters only for degenerate input, where floating point ties
// can resolve differently; any order gives a valid Delaunay triangulation.
func Triangulate(points []Point) []Triangle {
	super := SuperTriangle()
	triangulation := []workingTriangle{newWorkingTriangle(super)}

	for _, p := range points {
		triangulation = insertPoint(triangulation, p)
	}

	result := make([]Triangle, 0, len(triangulation))
	for _, t := range triangulation {
		if t.HasVertex(super.A) || t.HasVertex(super.B) || t.HasVertex(super.C) {
			continue
		}
		result = append(result, t.Triangle)
	}
	return result
}

// Insert a single point, returning the new triangulation. The input slice is
// not modified.
func insertPoint(triangulation []workingTriangle, p Point) []workingTriangle {
	// Partition into bad triangles, whose circumcircle contains p, and the
	// triangles that survive.
	var bad []Triangle
	kept := make([]workingTriangle, 0, len(triangulation)+2)
	for _, t := range triangulation {
		if t.contains(p) {
			bad = append(bad, t.Triangle)
		} else {
			kept = append(kept, t)
		}
	}

	// Re-triangulate the hole by connecting each edge on its boundary to p.
	for _, e := range cavityBoundary(bad) {
		kept = append(kept, newWorkingTriangle(Triangle{e.A, e.B, p}))
	}
	return kept
}

// Find the edges of the bad triangles that are not shared with any other bad
// triangle. Together they form the boundary of the polygonal hole left when
// the bad triangles are removed.
func cavityBoundary(bad []Triangle) []Edge {
	var polygon []Edge
	for i, t := range bad {
		for _, e := range t.Edges() {
			shared := false
			for j, other := range bad {
				if i == j {
					continue
				}
				if other.HasEdge(e) {
					shared = true
					break
				}
			}
			if !shared {
				polygon = append(polygon, e)
			}
		}
	}
	return polygon
}
