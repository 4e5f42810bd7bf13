package mec

import "github.com/banshee-data/mincircle/internal/geom"

// welzl solves for the points pts[:n] with the support set r.
//
// The working set P is the prefix pts[:n]. A pivot is removed by swapping
// it to pts[n-1] and shrinking the prefix. Recursive calls only permute
// their own prefix, so pts[:n-1] holds the same points after the first
// call returns and can be reused for the second.
func (s *Solver) welzl(pts []geom.Point, n int, r support) geom.Circle {
	if n == 0 || r.n == 3 {
		s.stats.Calls++
		return trivial(r)
	}

	i := s.rand.IntN(n)
	pts[i], pts[n-1] = pts[n-1], pts[i]
	p := pts[n-1]

	d := s.welzl(pts, n-1, r)
	if d.Contains(p) {
		return d
	}

	s.stats.Promotions++
	return s.welzl(pts, n-1, r.with(p))
}
