package mec

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/banshee-data/mincircle/internal/geom"
	"github.com/banshee-data/mincircle/internal/monitoring"
	"github.com/banshee-data/mincircle/internal/timeutil"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognised names.
var ErrUnknownAlgorithm = errors.New("mec: unknown algorithm")

// Algorithm selects how a Solver computes the circle.
type Algorithm int

const (
	// AlgorithmWelzl is the recursive randomized algorithm.
	AlgorithmWelzl Algorithm = iota
	// AlgorithmIterative is the loop form of the randomized algorithm.
	AlgorithmIterative
	// AlgorithmExhaustive tries every 2- and 3-point circle. Cubic or worse;
	// intended as a test oracle.
	AlgorithmExhaustive
)

var algorithmNames = map[Algorithm]string{
	AlgorithmWelzl:      "welzl",
	AlgorithmIterative:  "iterative",
	AlgorithmExhaustive: "exhaustive",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmWelzl, AlgorithmIterative, AlgorithmExhaustive}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Stats counts the work done by the most recent Solve.
type Stats struct {
	Points int `json:"points"`
	// Calls is the number of recursive calls (Welzl) or loop passes that
	// reached a trivial construction.
	Calls int `json:"calls"`
	// Promotions counts points that fell outside the running circle and
	// were promoted into the support set.
	Promotions int           `json:"promotions"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}

// Solver computes minimum enclosing circles. A Solver carries a random
// generator and is not safe for concurrent use.
type Solver struct {
	rand      Rand
	clock     timeutil.Clock
	algorithm Algorithm
	stats     Stats
}

// Option configures a Solver.
type Option func(*Solver)

// WithRand injects the pivot generator.
func WithRand(r Rand) Option {
	return func(s *Solver) { s.rand = r }
}

// WithSeed uses a deterministic generator built by NewRand.
func WithSeed(seed uint64) Option {
	return func(s *Solver) { s.rand = NewRand(seed) }
}

// WithClock replaces the clock used to time Solve.
func WithClock(c timeutil.Clock) Option {
	return func(s *Solver) { s.clock = c }
}

// WithAlgorithm selects the algorithm. The default is AlgorithmWelzl.
func WithAlgorithm(a Algorithm) Option {
	return func(s *Solver) { s.algorithm = a }
}

// NewSolver returns a Solver. Without WithRand or WithSeed the generator is
// seeded from the clock.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{algorithm: AlgorithmWelzl, clock: timeutil.RealClock{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = NewRand(uint64(s.clock.Now().UnixNano()))
	}
	return s
}

// Algorithm returns the configured algorithm.
func (s *Solver) Algorithm() Algorithm {
	return s.algorithm
}

// Stats returns the counters of the last Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve returns the smallest circle containing every point. The input slice
// is not modified. An empty input yields geom.Origin().
func (s *Solver) Solve(points []geom.Point) geom.Circle {
	s.stats = Stats{Points: len(points)}
	if len(points) == 0 {
		return geom.Origin()
	}

	start := s.clock.Now()
	var c geom.Circle
	switch s.algorithm {
	case AlgorithmIterative:
		c = s.iterative(slices.Clone(points))
	case AlgorithmExhaustive:
		c = Exhaustive(points)
	default:
		pts := slices.Clone(points)
		c = s.welzl(pts, len(pts), support{})
	}
	s.stats.Elapsed = s.clock.Since(start)

	if monitoring.DebugEnabled() {
		monitoring.Debugf("mec: %s n=%d calls=%d promotions=%d elapsed=%s -> %v",
			s.algorithm, s.stats.Points, s.stats.Calls, s.stats.Promotions, s.stats.Elapsed, c)
	}
	return c
}

// SmallestEnclosingCircle is Solve on a fresh clock-seeded Welzl solver.
func SmallestEnclosingCircle(points []geom.Point) geom.Circle {
	return NewSolver().Solve(points)
}
