// Package geom holds the planar value types shared by the enclosing-circle
// solver, the point loaders and the renderers.
package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an immutable position in the plane. Two points are equal when
// both coordinates are equal, so Point is usable with == and as a map key.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns p as a gonum r2 vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec(p)
}

// FromVec converts a gonum r2 vector back into a Point.
func FromVec(v r2.Vec) Point {
	return Point(v)
}

// Dist returns the Euclidean distance between p and q. Every containment
// decision in the module goes through this function so that a point used to
// build a circle always tests as inside it.
func (p Point) Dist(q Point) float64 {
	return r2.Norm(r2.Sub(p.Vec(), q.Vec()))
}

// Dist2 returns the squared Euclidean distance between p and q.
func (p Point) Dist2(q Point) float64 {
	return r2.Norm2(r2.Sub(p.Vec(), q.Vec()))
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return FromVec(r2.Scale(0.5, r2.Add(a.Vec(), b.Vec())))
}

// Orientation returns twice the signed area of triangle abc: positive for a
// counter-clockwise turn, negative for clockwise, zero when collinear.
func Orientation(a, b, c Point) float64 {
	return r2.Cross(r2.Sub(b.Vec(), a.Vec()), r2.Sub(c.Vec(), a.Vec()))
}
