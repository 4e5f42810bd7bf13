package mec

import (
	"math"

	"github.com/banshee-data/mincircle/internal/geom"
)

// support is the set R of points pinned to the boundary of the candidate
// circle. It is passed by value, so each recursion level owns its copy.
type support struct {
	pts [3]geom.Point
	n   int
}

func (s support) with(p geom.Point) support {
	s.pts[s.n] = p
	s.n++
	return s
}

// CircleFrom2 returns the circle having segment ab as a diameter, which is
// the smallest circle through both points.
func CircleFrom2(a, b geom.Point) geom.Circle {
	c := geom.Midpoint(a, b)
	return geom.Circle{Center: c, Radius: math.Max(c.Dist(a), c.Dist(b))}
}

// Circumcircle returns the unique circle through a, b and c. When the three
// points are collinear the circle is undefined and Circumcircle returns
// geom.Origin() with ok == false.
//
// The determinant
//
//	d = 2(a.x(b.y-c.y) + b.x(c.y-a.y) + c.x(a.y-b.y))
//
// is evaluated after translating a to the origin, where it reduces to
// 2((b-a) x (c-a)), twice geom.Orientation. The translated form keeps the
// squared norms small for point sets far from (0, 0).
func Circumcircle(a, b, c geom.Point) (circle geom.Circle, ok bool) {
	d := 2 * geom.Orientation(a, b, c)
	if d == 0 {
		return geom.Origin(), false
	}

	bx, by := b.X-a.X, b.Y-a.Y
	cx, cy := c.X-a.X, c.Y-a.Y
	nb := bx*bx + by*by
	nc := cx*cx + cy*cy
	center := geom.Point{
		X: a.X + (cy*nb-by*nc)/d,
		Y: a.Y + (bx*nc-cx*nb)/d,
	}

	// Radius is the farthest support so all three test as contained.
	r := math.Max(center.Dist(a), math.Max(center.Dist(b), center.Dist(c)))
	return geom.Circle{Center: center, Radius: r}, true
}

// trivial returns the circle determined by the support set alone.
func trivial(r support) geom.Circle {
	switch r.n {
	case 0:
		return geom.Origin()
	case 1:
		return geom.Circle{Center: r.pts[0]}
	case 2:
		return CircleFrom2(r.pts[0], r.pts[1])
	}

	a, b, c := r.pts[0], r.pts[1], r.pts[2]
	if circle, ok := Circumcircle(a, b, c); ok {
		return circle
	}
	// Collinear or repeated supports: the diameter circle of the two
	// extreme points covers the third.
	return widestPair(a, b, c)
}

func widestPair(a, b, c geom.Point) geom.Circle {
	ab, bc, ca := a.Dist2(b), b.Dist2(c), c.Dist2(a)
	switch {
	case ab >= bc && ab >= ca:
		return CircleFrom2(a, b)
	case bc >= ca:
		return CircleFrom2(b, c)
	default:
		return CircleFrom2(c, a)
	}
}
