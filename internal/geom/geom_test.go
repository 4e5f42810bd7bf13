package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointDist(t *testing.T) {
	cases := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative coords", Pt(-1, -1), Pt(2, 3), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Dist(tc.b); got != tc.want {
				t.Errorf("Dist = %v, want %v", got, tc.want)
			}
			if got := tc.a.Dist2(tc.b); got != tc.want*tc.want {
				t.Errorf("Dist2 = %v, want %v", got, tc.want*tc.want)
			}
		})
	}
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Pt(1, -2).IsFinite())
	assert.False(t, Pt(math.NaN(), 0).IsFinite())
	assert.False(t, Pt(0, math.Inf(-1)).IsFinite())
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, Pt(2, 0), Midpoint(Pt(0, 0), Pt(4, 0)))
	assert.Equal(t, Pt(-1, 1.5), Midpoint(Pt(-3, 1), Pt(1, 2)))
}

func TestOrientation(t *testing.T) {
	assert.Greater(t, Orientation(Pt(0, 0), Pt(1, 0), Pt(0, 1)), 0.0)
	assert.Less(t, Orientation(Pt(0, 0), Pt(0, 1), Pt(1, 0)), 0.0)
	assert.Zero(t, Orientation(Pt(0, 0), Pt(1, 0), Pt(2, 0)))
}

func TestCircleContains(t *testing.T) {
	c := Circle{Center: Pt(2, 0), Radius: 2}

	assert.True(t, c.Contains(Pt(2, 0)), "center")
	assert.True(t, c.Contains(Pt(0, 0)), "boundary")
	assert.True(t, c.Contains(Pt(4, 0)), "boundary")
	assert.False(t, c.Contains(Pt(4.0000001, 0)), "just outside")
	assert.True(t, c.ContainsWithin(Pt(4.0000001, 0), 1e-6))
}

func TestCircleTolerance(t *testing.T) {
	assert.Equal(t, 1e-9, Circle{Center: Pt(0.1, 0.2), Radius: 0.3}.Tolerance(), "small circles use an absolute floor")
	assert.InDelta(t, 3e-6, Circle{Center: Pt(-2000, 500), Radius: 1000}.Tolerance(), 1e-18)

	c := Circle{Center: Pt(1e6, 1e6), Radius: 5}
	assert.True(t, c.ContainsWithin(Pt(1e6+5+1e-4, 1e6), c.Tolerance()))
	assert.False(t, c.ContainsWithin(Pt(1e6+5+1e-2, 1e6), c.Tolerance()))
}

func TestOriginIsDegenerate(t *testing.T) {
	o := Origin()
	assert.True(t, o.IsDegenerate())
	assert.Equal(t, Pt(0, 0), o.Center)
	assert.True(t, o.Contains(Pt(0, 0)))
	assert.False(t, o.Contains(Pt(0, 1e-300)))
}

func TestCircleBounds(t *testing.T) {
	b := Circle{Center: Pt(1, -1), Radius: 2}.Bounds()
	assert.Equal(t, Pt(-1, -3), FromVec(b.Min))
	assert.Equal(t, Pt(3, 1), FromVec(b.Max))
}

func TestCircleOutline(t *testing.T) {
	c := Circle{Center: Pt(5, 5), Radius: 3}
	pts := c.Outline(16)
	if len(pts) != 17 {
		t.Fatalf("len(Outline(16)) = %d, want 17", len(pts))
	}
	assert.Equal(t, pts[0], pts[16])
	for _, p := range pts {
		assert.InDelta(t, 3.0, p.Dist(c.Center), 1e-12)
	}

	// Fewer than three segments is widened to a triangle.
	assert.Len(t, c.Outline(1), 4)
}

func TestIntegral(t *testing.T) {
	cases := []struct {
		name string
		in   Circle
		want IntCircle
	}{
		{"exact", Circle{Center: Pt(2, 0), Radius: 2}, IntCircle{X: 2, Y: 0, Radius: 2}},
		{"right triangle circumcircle", Circle{Center: Pt(2, 2), Radius: math.Hypot(2, 2)}, IntCircle{X: 2, Y: 2, Radius: 3}},
		{"single point", Circle{Center: Pt(5, 5)}, IntCircle{X: 5, Y: 5, Radius: 0}},
		{"center rounding widens radius", Circle{Center: Pt(0.5, 0), Radius: 0.5}, IntCircle{X: 1, Y: 0, Radius: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Integral())
		})
	}
}

func TestIntegralKeepsContainment(t *testing.T) {
	c := Circle{Center: Pt(0.5, 0.5), Radius: math.Sqrt(0.5)}
	ic := c.Integral()
	for _, p := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		assert.True(t, ic.Contains(p[0], p[1]), "lattice point %v", p)
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "(1, 2.5)", Pt(1, 2.5).String())
	assert.Equal(t, "center=(2, 0) radius=2", Circle{Center: Pt(2, 0), Radius: 2}.String())
	assert.Equal(t, "center=(2, 2) radius=3", IntCircle{X: 2, Y: 2, Radius: 3}.String())
}
