package internal

import "math"

// While we could pick some large finite triangle that encloses all the input,
// nearly collinear triples have circumcircles that can grow past any fixed
// bound. Instead, the super triangle has its vertices at symbolic infinities.
// A triangle touching one of them has a circumcircle of infinite radius, which
// is locally a straight line, so containment becomes a half-plane test.
//
// The three directions are chosen so that every combination of them can be
// told apart by which coordinates are infinite.
func SuperTriangle() Triangle {
	inf := math.Inf(1)
	return Triangle{
		A: Point{-inf, -inf},
		B: Point{0, inf},
		C: Point{inf, 0},
	}
}

// Containment test standing in for the circumcircle of a triangle with one or
// more vertices at infinity. p must be finite.
//
// Three cases:
//
//	0 finite vertices: the circle contains everything.
//	1 finite vertex:   the boundary is a line through it, with a direction
//	                   fixed by which two infinite vertices are present.
//	2 finite vertices: the boundary is the line through them, and the
//	                   infinite vertex decides which side is inside.
//
// Anything else (all three finite) is not contained.
func HalfPlaneContains(t Triangle, p Point) bool {
	finiteCount := 0
	for _, v := range [3]Point{t.A, t.B, t.C} {
		if v.IsFinite() {
			finiteCount++
		}
	}

	switch finiteCount {
	case 0:
		return true

	case 1:
		var f, v1, v2 Point
		if t.A.IsFinite() {
			f, v1, v2 = t.A, t.B, t.C
		} else if t.B.IsFinite() {
			f, v1, v2 = t.B, t.A, t.C
		} else {
			f, v1, v2 = t.C, t.A, t.B
		}

		if isPosInf(v1.Y) || isPosInf(v2.Y) {
			if isPosInf(v1.X) || isPosInf(v2.X) {
				// Vertices { (0, +inf), (+inf, 0) }: y = -x + b
				b := f.Y + f.X
				return p.Y+p.X > b
			}
			// Vertices { (0, +inf), (-inf, -inf) }: y = 3x + b
			b := f.Y - 3*f.X
			return p.Y-3*p.X > b
		}
		// Vertices { (-inf, -inf), (+inf, 0) }: y = x/3 + b
		b := f.Y - f.X/3
		return p.Y-p.X/3 < b

	case 2:
		var f, v1, v2 Point
		if !t.A.IsFinite() {
			f, v1, v2 = t.A, t.B, t.C
		} else if !t.B.IsFinite() {
			f, v1, v2 = t.B, t.A, t.C
		} else {
			f, v1, v2 = t.C, t.B, t.A
		}

		// The line from v1 to v2 is tangent to the circle at infinity
		m := Slope(v1, v2)
		b := v1.Y - m*v1.X
		side := p.Y - m*p.X
		switch {
		case isPosInf(f.Y):
			// (0, +inf): the interior is always above the line
			return side > b
		case isPosInf(f.X):
			// (+inf, 0)
			if m >= 0 {
				return side < b
			}
			return side > b
		default:
			// (-inf, -inf)
			if m >= 1 {
				return side > b
			}
			return side < b
		}
	}

	return false
}

func isPosInf(v float64) bool {
	return math.IsInf(v, 1)
}
