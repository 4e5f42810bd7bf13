// Package testutil provides shared test utilities and fixtures.
//
// This package centralises point-set fixtures and enclosure assertions used
// by the solver, renderer and command tests.
package testutil

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/banshee-data/mincircle/internal/geom"
)

// AssertEncloses fails the test for every point farther than c.Radius from
// c.Center, allowing c.Tolerance() for rounding.
func AssertEncloses(t *testing.T, c geom.Circle, pts []geom.Point) {
	t.Helper()
	eps := c.Tolerance()
	for i, p := range pts {
		if d := p.Dist(c.Center); d > c.Radius+eps {
			t.Errorf("point %d %v outside %v by %g", i, p, c, d-c.Radius)
		}
	}
}

// AssertRadius fails the test when got and want differ by more than a
// relative 1e-9.
func AssertRadius(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9*math.Max(1, want) {
		t.Errorf("radius = %.15g, want %.15g", got, want)
	}
}

// Fixture is a named point set with its known minimum enclosing circle.
type Fixture struct {
	Name   string
	Points []geom.Point
	Want   geom.Circle
}

// Fixtures returns the reference cases with hand-computed answers.
func Fixtures() []Fixture {
	return []Fixture{
		{
			Name:   "single point",
			Points: []geom.Point{{X: 5, Y: 5}},
			Want:   geom.Circle{Center: geom.Pt(5, 5)},
		},
		{
			Name:   "two points",
			Points: []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}},
			Want:   geom.Circle{Center: geom.Pt(2, 0), Radius: 2},
		},
		{
			Name:   "right triangle",
			Points: []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}},
			Want:   geom.Circle{Center: geom.Pt(2, 2), Radius: math.Sqrt(8)},
		},
		{
			Name:   "collinear",
			Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
			Want:   geom.Circle{Center: geom.Pt(1, 0), Radius: 1},
		},
		{
			Name:   "collinear diagonal unsorted",
			Points: []geom.Point{{X: 3, Y: 3}, {X: -1, Y: -1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 2, Y: 2}},
			Want:   geom.Circle{Center: geom.Pt(1, 1), Radius: 2 * math.Sqrt2},
		},
		{
			Name:   "equilateral triangle",
			Points: []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: math.Sqrt(3)}},
			Want:   geom.Circle{Center: geom.Pt(1, 1/math.Sqrt(3)), Radius: 2 / math.Sqrt(3)},
		},
		{
			Name:   "obtuse triangle uses longest side",
			Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 1}},
			Want:   geom.Circle{Center: geom.Pt(5, 0), Radius: 5},
		},
		{
			Name: "square with interior points",
			Points: []geom.Point{
				{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
				{X: 0, Y: 0}, {X: 0.5, Y: -0.25}, {X: -0.75, Y: 0.5},
			},
			Want: geom.Circle{Center: geom.Pt(0, 0), Radius: math.Sqrt2},
		},
		{
			Name: "duplicates",
			Points: []geom.Point{
				{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 0},
			},
			Want: geom.Circle{Center: geom.Pt(2, 0), Radius: 2},
		},
		{
			Name:   "all coincident",
			Points: []geom.Point{{X: -3, Y: 7}, {X: -3, Y: 7}, {X: -3, Y: 7}},
			Want:   geom.Circle{Center: geom.Pt(-3, 7)},
		},
	}
}

// RandomPoints returns n points uniform in [-span, span]^2.
func RandomPoints(r *rand.Rand, n int, span float64) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt((2*r.Float64()-1)*span, (2*r.Float64()-1)*span)
	}
	return pts
}

// LatticePoints returns n points on the integer grid [-span, span]^2. Small
// spans produce duplicates and cocircular configurations.
func LatticePoints(r *rand.Rand, n, span int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Pt(float64(r.IntN(2*span+1)-span), float64(r.IntN(2*span+1)-span))
	}
	return pts
}

// Shuffled returns a shuffled copy of pts.
func Shuffled(r *rand.Rand, pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
