package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomPointsInDisk(t *testing.T) {
	const radius = 25.0
	points := RandomPointsInDisk(rand.New(rand.NewSource(3)), 500, radius)
	assert.Len(t, points, 500)
	for _, p := range points {
		assert.LessOrEqual(t, p.DistanceSquared(Point{}), radius*radius)
	}

	// Same seed, same points
	assert.Equal(t, points, RandomPointsInDisk(rand.New(rand.NewSource(3)), 500, radius))
	assert.NotEqual(t, points, RandomPointsInDisk(rand.New(rand.NewSource(4)), 500, radius))
}
