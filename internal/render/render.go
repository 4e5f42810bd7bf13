// Package render draws a point set together with its enclosing circle. It
// consumes only geom.Point and geom.Circle values and never calls back into
// the solver.
package render

import (
	"errors"
	"math"

	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/banshee-data/mincircle/internal/pointset"
)

var (
	// ErrNegativeRadius is returned when asked to draw a circle with radius < 0.
	ErrNegativeRadius = errors.New("render: negative radius")
	// ErrNonFiniteCenter is returned for a circle centred on NaN or Inf.
	ErrNonFiniteCenter = errors.New("render: non-finite center")
)

// DefaultSegments is the number of polyline segments used for the outline.
const DefaultSegments = 256

// viewport is a square window centred on the union of the point bounds and
// the circle, so the circle is not distorted.
type viewport struct {
	minX, maxX, minY, maxY float64
}

func checkCircle(c geom.Circle) error {
	if c.Radius < 0 || math.IsNaN(c.Radius) {
		return ErrNegativeRadius
	}
	if !c.Center.IsFinite() {
		return ErrNonFiniteCenter
	}
	return nil
}

func fitViewport(pts []geom.Point, c geom.Circle, pad float64) viewport {
	box := c.Bounds()
	if len(pts) > 0 {
		b := pointset.Bounds(pts)
		box.Min.X = min(box.Min.X, b.Min.X)
		box.Min.Y = min(box.Min.Y, b.Min.Y)
		box.Max.X = max(box.Max.X, b.Max.X)
		box.Max.Y = max(box.Max.Y, b.Max.Y)
	}

	cx := (box.Min.X + box.Max.X) / 2
	cy := (box.Min.Y + box.Max.Y) / 2
	half := max(box.Max.X-box.Min.X, box.Max.Y-box.Min.Y) / 2 * (1 + pad)
	if half == 0 {
		half = 1
	}
	return viewport{minX: cx - half, maxX: cx + half, minY: cy - half, maxY: cy + half}
}
