// Package mec computes the minimum enclosing circle of a planar point set.
//
// The production path is Welzl's randomized incremental algorithm: points
// are drawn at random from a working range, and a point that falls outside
// the circle computed for the rest becomes a support point that must lie on
// the boundary. With at most three support points the circle is fully
// determined (see trivial.go), giving expected linear time.
//
// Two further algorithms share the same Solver front end:
//   - AlgorithmIterative: the same recursion unrolled into three nested
//     loops over a shuffled copy, without an O(n) call stack.
//   - AlgorithmExhaustive: the brute-force oracle used to cross-check the
//     randomized paths on small inputs.
package mec
