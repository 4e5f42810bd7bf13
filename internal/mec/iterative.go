package mec

import "github.com/banshee-data/mincircle/internal/geom"

// iterative is the move-to-front form of Welzl's algorithm. After a random
// shuffle, each outer loop level fixes one more support point and rescans
// only the points before it. pts is consumed.
func (s *Solver) iterative(pts []geom.Point) geom.Circle {
	s.shuffle(pts)

	c := trivial(support{pts: [3]geom.Point{pts[0]}, n: 1})
	s.stats.Calls++
	for i := 1; i < len(pts); i++ {
		if c.Contains(pts[i]) {
			continue
		}
		s.stats.Promotions++
		c = trivial(support{pts: [3]geom.Point{pts[i]}, n: 1})
		s.stats.Calls++
		for j := 0; j < i; j++ {
			if c.Contains(pts[j]) {
				continue
			}
			s.stats.Promotions++
			c = trivial(support{pts: [3]geom.Point{pts[i], pts[j]}, n: 2})
			s.stats.Calls++
			for k := 0; k < j; k++ {
				if c.Contains(pts[k]) {
					continue
				}
				s.stats.Promotions++
				c = trivial(support{pts: [3]geom.Point{pts[i], pts[j], pts[k]}, n: 3})
				s.stats.Calls++
			}
		}
	}
	return c
}

// shuffle is a Fisher-Yates shuffle driven by the solver's generator.
func (s *Solver) shuffle(pts []geom.Point) {
	for i := len(pts) - 1; i > 0; i-- {
		j := s.rand.IntN(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
}
