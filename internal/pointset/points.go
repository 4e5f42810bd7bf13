package pointset

import (
	"github.com/banshee-data/mincircle/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// Dedupe returns pts without exact duplicates, keeping the first occurrence
// of each point in input order.
func Dedupe(pts []geom.Point) []geom.Point {
	seen := make(map[geom.Point]struct{}, len(pts))
	out := make([]geom.Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Bounds returns the axis-aligned bounding box of pts. The box of an empty
// set is the zero box.
func Bounds(pts []geom.Point) r2.Box {
	if len(pts) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: pts[0].Vec(), Max: pts[0].Vec()}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}
