package internal

import (
	"math"
	"math/rand"
)

// Generate n points in a disk of the given radius around the origin. The
// radius and angle are each uniform, so points bunch up toward the center,
// which is a good way to get plenty of nearly collinear and nearly cocircular
// neighbors.
//
// The random source is supplied by the caller so that runs can be reproduced.
func RandomPointsInDisk(rng *rand.Rand, n int, radius float64) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		r := rng.Float64() * radius
		theta := rng.Float64() * 2 * math.Pi
		points = append(points, Point{r * math.Cos(theta), r * math.Sin(theta)})
	}
	return points
}
