package pointset

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/banshee-data/mincircle/internal/geom"
	"gonum.org/v1/gonum/stat/distuv"
)

// Extent is the half-width of the region generated points fall in.
const Extent = 1000.0

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("pointset: unknown generator kind")

// Kind selects a random point distribution.
type Kind int

const (
	// KindUniform is uniform in the square [-Extent, Extent]^2.
	KindUniform Kind = iota
	// KindDisc is uniform in the disc of radius Extent.
	KindDisc
	// KindRing puts every point on the circle of radius Extent.
	KindRing
	// KindGaussian is isotropic normal with sigma Extent/4.
	KindGaussian
	// KindLine puts every point on the line y = x/2.
	KindLine
	// KindGrid draws integer lattice points from a square sized so that
	// duplicates and cocircular points are common.
	KindGrid
)

var kindNames = map[Kind]string{
	KindUniform:  "uniform",
	KindDisc:     "disc",
	KindRing:     "ring",
	KindGaussian: "gaussian",
	KindLine:     "line",
	KindGrid:     "grid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every generator kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindUniform, KindDisc, KindRing, KindGaussian, KindLine, KindGrid}
}

// ParseKind maps a case-insensitive name to a Kind.
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == want {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Generate returns n points drawn from the distribution kind using r.
// The same generator state always yields the same points.
func Generate(kind Kind, n int, r *rand.Rand) []geom.Point {
	if n <= 0 {
		return nil
	}
	pts := make([]geom.Point, n)
	switch kind {
	case KindDisc:
		for i := range pts {
			rad := Extent * math.Sqrt(r.Float64())
			theta := 2 * math.Pi * r.Float64()
			pts[i] = geom.Pt(rad*math.Cos(theta), rad*math.Sin(theta))
		}
	case KindRing:
		for i := range pts {
			theta := 2 * math.Pi * r.Float64()
			pts[i] = geom.Pt(Extent*math.Cos(theta), Extent*math.Sin(theta))
		}
	case KindGaussian:
		norm := distuv.Normal{Mu: 0, Sigma: Extent / 4, Src: r}
		for i := range pts {
			pts[i] = geom.Pt(norm.Rand(), norm.Rand())
		}
	case KindLine:
		for i := range pts {
			x := (2*r.Float64() - 1) * Extent
			pts[i] = geom.Pt(x, x/2)
		}
	case KindGrid:
		half := max(1, int(math.Sqrt(float64(n))))
		for i := range pts {
			pts[i] = geom.Pt(float64(r.IntN(2*half+1)-half), float64(r.IntN(2*half+1)-half))
		}
	default:
		for i := range pts {
			pts[i] = geom.Pt((2*r.Float64()-1)*Extent, (2*r.Float64()-1)*Extent)
		}
	}
	return pts
}
