package mec

import (
	"math"

	"github.com/banshee-data/mincircle/internal/geom"
)

// oracleSlack is the relative tolerance the oracle allows when checking
// enclosure. Lattice inputs put many points exactly on a candidate boundary
// and rounding in the center can leave them an ulp outside.
const oracleSlack = 1e-9

// Exhaustive computes the minimum enclosing circle by brute force.
//
// Pair circles come first: when the diameter circle of some pair encloses
// every point it is the answer, since no enclosing circle can be smaller
// than half the distance between two of the points. Otherwise every
// non-collinear triple's circumcircle is tried and the smallest enclosing
// one wins. Cost is O(n^3) for the pair pass and O(n^4) for the triple pass.
func Exhaustive(points []geom.Point) geom.Circle {
	switch len(points) {
	case 0:
		return geom.Origin()
	case 1:
		return geom.Circle{Center: points[0]}
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			c := CircleFrom2(points[i], points[j])
			if enclosesAll(c, points) {
				return c
			}
		}
	}

	best := geom.Circle{Radius: math.Inf(1)}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				c, ok := Circumcircle(points[i], points[j], points[k])
				if !ok || c.Radius >= best.Radius {
					continue
				}
				if enclosesAll(c, points) {
					best = c
				}
			}
		}
	}

	if math.IsInf(best.Radius, 1) {
		// Only reachable when rounding rejects every candidate.
		return farthestPair(points)
	}
	return best
}

func farthestPair(points []geom.Point) geom.Circle {
	a, b := points[0], points[0]
	var d2 float64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := points[i].Dist2(points[j]); d > d2 {
				a, b, d2 = points[i], points[j], d
			}
		}
	}
	return CircleFrom2(a, b)
}

func enclosesAll(c geom.Circle, points []geom.Point) bool {
	_, ok := Encloses(c, points, oracleSlack*math.Max(1, c.Radius))
	return ok
}
