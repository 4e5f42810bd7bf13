package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a center and a non-negative radius. A zero radius collapses the
// circle onto its center.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Origin returns the degenerate circle at (0, 0) with radius 0. It is the
// answer for an empty point set and the placeholder for undefined
// constructions.
func Origin() Circle {
	return Circle{}
}

// Contains reports whether q lies inside or on c. The comparison is exact:
// no tolerance beyond float64 precision is applied.
func (c Circle) Contains(q Point) bool {
	return q.Dist(c.Center) <= c.Radius
}

// ContainsWithin is Contains with an explicit slack added to the radius.
func (c Circle) ContainsWithin(q Point, eps float64) bool {
	return q.Dist(c.Center) <= c.Radius+eps
}

// Tolerance returns a slack proportional to the magnitude of c, suitable
// for ContainsWithin when checking a float64 result against its inputs.
func (c Circle) Tolerance() float64 {
	scale := c.Radius + math.Max(math.Abs(c.Center.X), math.Abs(c.Center.Y))
	return 1e-9 * math.Max(1, scale)
}

// IsDegenerate reports whether the circle has collapsed onto its center.
func (c Circle) IsDegenerate() bool {
	return c.Radius == 0
}

// Bounds returns the axis-aligned box that circumscribes c.
func (c Circle) Bounds() r2.Box {
	r := r2.Vec{X: c.Radius, Y: c.Radius}
	return r2.Box{
		Min: r2.Sub(c.Center.Vec(), r),
		Max: r2.Add(c.Center.Vec(), r),
	}
}

// Outline returns n points evenly spaced on the circumference, starting at
// angle zero. The first point is repeated at the end so the slice can be
// drawn as a closed polyline.
func (c Circle) Outline(n int) []Point {
	if n < 3 {
		n = 3
	}
	out := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out = append(out, Point{
			X: c.Center.X + c.Radius*math.Cos(theta),
			Y: c.Center.Y + c.Radius*math.Sin(theta),
		})
	}
	return append(out, out[0])
}

func (c Circle) String() string {
	return fmt.Sprintf("center=%v radius=%g", c.Center, c.Radius)
}

// IntCircle is a circle in an integral coordinate domain.
type IntCircle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Radius int `json:"radius"`
}

// Integral rounds c into the integer domain. The center is rounded to the
// nearest lattice point and the radius is widened by the rounding offset
// before taking the ceiling, so every point inside c stays inside the
// result. For a center that is already integral this is ceil(Radius).
func (c Circle) Integral() IntCircle {
	cx := math.Round(c.Center.X)
	cy := math.Round(c.Center.Y)
	offset := math.Hypot(cx-c.Center.X, cy-c.Center.Y)
	return IntCircle{
		X:      int(cx),
		Y:      int(cy),
		Radius: int(math.Ceil(c.Radius + offset)),
	}
}

// Contains compares squared integer distances, so the test is exact.
func (c IntCircle) Contains(x, y int) bool {
	dx := int64(x - c.X)
	dy := int64(y - c.Y)
	r := int64(c.Radius)
	return dx*dx+dy*dy <= r*r
}

func (c IntCircle) String() string {
	return fmt.Sprintf("center=(%d, %d) radius=%d", c.X, c.Y, c.Radius)
}
