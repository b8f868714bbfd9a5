package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Machine epsilon for float64. Equality tolerance exists only to absorb
// round-trip error from midpoint and slope arithmetic. It must never be used
// to merge distinct input points.
const Epsilon = 0x1p-52

// Points are values. Nothing in the triangulation ever modifies a point after
// it has been created, so they are copied freely between edges and triangles.
type Point struct {
	X float64
	Y float64
}

type Edge struct {
	A, B Point
}

// Note that the radius is stored squared. Containment compares squared
// distances against it directly.
type Circle struct {
	Center        Point
	RadiusSquared float64
}

type Triangle struct {
	A, B, C Point
}

func (p Point) Equal(other Point) bool {
	if p.X == other.X && p.Y == other.Y {
		return true
	}
	return math.Abs(p.X-other.X) <= Epsilon && math.Abs(p.Y-other.Y) <= Epsilon
}

func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) DistanceSquared(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Slope of the line through a and b. Vertical lines have infinite slope.
func Slope(a, b Point) float64 {
	if a.X-b.X == 0 {
		return math.Inf(1)
	}
	return (a.Y - b.Y) / (a.X - b.X)
}

func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Edges are undirected, so either orientation matches.
func (e Edge) Equal(other Edge) bool {
	return (e.A.Equal(other.A) && e.B.Equal(other.B)) ||
		(e.A.Equal(other.B) && e.B.Equal(other.A))
}

func (c Circle) Contains(p Point) bool {
	return p.DistanceSquared(c.Center) < c.RadiusSquared
}

func (c Circle) Radius() float64 {
	return math.Sqrt(c.RadiusSquared)
}

// Shoelace formula. Positive for counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return ((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)) / 2
}

// A triangle is valid if all of its vertices are finite and it has nonzero
// area. This is the only collinearity test in the package.
func (t Triangle) IsValid() bool {
	if !t.A.IsFinite() || !t.B.IsFinite() || !t.C.IsFinite() {
		return false
	}
	return math.Abs(t.SignedArea()) > Epsilon
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A.Equal(p) || t.B.Equal(p) || t.C.Equal(p)
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.A, t.C}}
}

func (t Triangle) HasEdge(e Edge) bool {
	for _, edge := range t.Edges() {
		if edge.Equal(e) {
			return true
		}
	}
	return false
}

// Triangles are equal only if they have the same vertices in the same stored
// order. Rotations of the same triangle are not equal.
func (t Triangle) Equal(other Triangle) bool {
	return t.A.Equal(other.A) && t.B.Equal(other.B) && t.C.Equal(other.C)
}

// Find the circumcircle of the triangle. If the triangle is not valid
// (collinear, or with a vertex at infinity), there is no finite circumcircle
// and ok is false. Callers that need containment for such triangles must use
// HalfPlaneContains instead.
func (t Triangle) Circumcircle() (circle Circle, ok bool) {
	if !t.IsValid() {
		return Circle{}, false
	}

	// The circumcenter is the intersection of two perpendicular bisectors. A
	// horizontal edge would have a vertical bisector, which has no slope, so we
	// swap in the third edge when that happens.
	midpoint1, slope1 := Midpoint(t.A, t.B), Slope(t.A, t.B)
	midpoint2, slope2 := Midpoint(t.B, t.C), Slope(t.B, t.C)
	if slope1 == 0 {
		midpoint1, slope1 = Midpoint(t.A, t.C), Slope(t.A, t.C)
	} else if slope2 == 0 {
		midpoint2, slope2 = Midpoint(t.A, t.C), Slope(t.A, t.C)
	}

	// Bisectors are y = m1*x + b1 and y = m2*x + b2
	m1 := -1 / slope1
	m2 := -1 / slope2
	b1 := midpoint1.Y - m1*midpoint1.X
	b2 := midpoint2.Y - m2*midpoint2.X

	// m1*x + b1 = m2*x + b2  =>  x = (b2 - b1) / (m1 - m2)
	x := (b2 - b1) / (m1 - m2)
	center := Point{x, m1*x + b1}

	// Every vertex is on the circle in theory, but floating point error puts
	// some of them slightly inside. Using the smallest distance as the radius
	// guarantees that a triangle never contains its own vertices.
	radiusSquared := math.Min(
		math.Min(t.A.DistanceSquared(center), t.B.DistanceSquared(center)),
		t.C.DistanceSquared(center),
	)

	return Circle{center, radiusSquared}, true
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle %s <A: %s, B: %s, C: %s>", t.DbgName(), t.A, t.B, t.C)
}

func (t Triangle) DbgName() string {
	name := dbg.Name(t)
	if !t.A.IsFinite() || !t.B.IsFinite() || !t.C.IsFinite() { // Touches infinity
		name = aurora.Cyan(name).String()
	} else if !t.IsValid() { // Zero area
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
