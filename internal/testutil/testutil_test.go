package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/banshee-data/mincircle/internal/geom"
)

func TestFixturesEncloseTheirPoints(t *testing.T) {
	t.Parallel()

	for _, f := range Fixtures() {
		t.Run(f.Name, func(t *testing.T) {
			if len(f.Points) == 0 {
				t.Fatal("fixture has no points")
			}
			AssertEncloses(t, f.Want, f.Points)
		})
	}
}

func TestRandomPointsWithinSpan(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	pts := RandomPoints(r, 200, 10)
	if len(pts) != 200 {
		t.Fatalf("len = %d, want 200", len(pts))
	}
	for _, p := range pts {
		if p.X < -10 || p.X > 10 || p.Y < -10 || p.Y > 10 {
			t.Errorf("point %v outside span", p)
		}
	}
}

func TestLatticePointsAreIntegral(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for _, p := range LatticePoints(r, 100, 2) {
		if p.X != float64(int(p.X)) || p.Y != float64(int(p.Y)) {
			t.Errorf("point %v is not on the lattice", p)
		}
		if p.X < -2 || p.X > 2 || p.Y < -2 || p.Y > 2 {
			t.Errorf("point %v outside span", p)
		}
	}
}

func TestShuffledKeepsInput(t *testing.T) {
	t.Parallel()

	in := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3)}
	out := Shuffled(rand.New(rand.NewPCG(5, 6)), in)
	if in[0] != geom.Pt(1, 1) || in[2] != geom.Pt(3, 3) {
		t.Error("Shuffled modified its input")
	}
	seen := map[geom.Point]bool{}
	for _, p := range out {
		seen[p] = true
	}
	if len(seen) != 3 {
		t.Errorf("Shuffled lost points: %v", out)
	}
}
