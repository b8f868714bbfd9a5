package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuperTriangle(t *testing.T) {
	super := SuperTriangle()
	inf := math.Inf(1)
	assert.Equal(t, Point{-inf, -inf}, super.A)
	assert.Equal(t, Point{0, inf}, super.B)
	assert.Equal(t, Point{inf, 0}, super.C)
	assert.False(t, super.IsValid())
}

func TestHalfPlaneContains(t *testing.T) {
	inf := math.Inf(1)
	super := SuperTriangle()
	down, up, right := super.A, super.B, super.C
	origin := Point{0, 0}

	type probe struct {
		p        Point
		expected bool
	}
	cases := []struct {
		name     string
		triangle Triangle
		probes   []probe
	}{
		{
			"no finite vertices",
			super,
			[]probe{{origin, true}, {Point{1e9, -1e9}, true}, {Point{-3, 7}, true}},
		},
		{
			"up and right infinite",
			Triangle{origin, up, right},
			[]probe{{Point{1, 1}, true}, {Point{-1, -1}, false}, {Point{1, -1}, false}, {Point{2, -1}, true}},
		},
		{
			"up and right infinite, finite vertex in the middle",
			Triangle{up, Point{1, 1}, right},
			[]probe{{Point{2, 1}, true}, {Point{0, 1}, false}},
		},
		{
			"up and down infinite",
			Triangle{down, up, origin},
			[]probe{{Point{-1, 0}, true}, {Point{1, 0}, false}, {Point{0, 1}, true}, {Point{1, 2}, false}},
		},
		{
			"down and right infinite",
			Triangle{down, right, origin},
			[]probe{
				{Point{0, -1}, true},
				{Point{0, 1}, false},
				{Point{3, 0.5}, true},
				{Point{3, 1.5}, false},
				{Point{-3, -1.5}, true},
				{Point{-3, -0.5}, false},
			},
		},
		{
			"up infinite",
			Triangle{up, origin, Point{1, 0}},
			[]probe{{Point{0.5, 1}, true}, {Point{0.5, -1}, false}, {Point{100, 0.001}, true}},
		},
		{
			"right infinite, rising edge",
			Triangle{right, origin, Point{1, 1}},
			[]probe{{Point{1, 0}, true}, {Point{0, 1}, false}},
		},
		{
			"right infinite, falling edge",
			Triangle{right, origin, Point{1, -1}},
			[]probe{{Point{1, 0}, true}, {Point{-1, 0}, false}},
		},
		{
			"right infinite in last position",
			Triangle{origin, Point{1, 1}, right},
			[]probe{{Point{1, 0}, true}, {Point{0, 1}, false}},
		},
		{
			"down infinite, steep edge",
			Triangle{origin, down, Point{1, 2}},
			[]probe{{Point{0, 1}, true}, {Point{1, 0}, false}},
		},
		{
			"down infinite, shallow edge",
			Triangle{origin, Point{2, 1}, down},
			[]probe{{Point{1, 0}, true}, {Point{0, 1}, false}},
		},
		{
			"all finite",
			Triangle{origin, Point{1, 0}, Point{0, 1}},
			[]probe{{Point{0.1, 0.1}, false}, {Point{inf, inf}, false}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, probe := range c.probes {
				assert.Equal(t, probe.expected, HalfPlaneContains(c.triangle, probe.p), "probe %s", probe.p)
			}
		})
	}
}
