package mec

import "github.com/banshee-data/mincircle/internal/geom"

// Encloses checks that every point lies within c.Radius+eps of c.Center.
// It returns the index of the first violating point and false, or -1 and
// true when all points are enclosed.
func Encloses(c geom.Circle, points []geom.Point, eps float64) (int, bool) {
	for i, p := range points {
		if !c.ContainsWithin(p, eps) {
			return i, false
		}
	}
	return -1, true
}
