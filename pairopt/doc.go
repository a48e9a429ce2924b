// Package pairopt implements the 12-dimensional pair optimizer: given a tree
// already sorted and paired by package tree, search for the signed-magnitude
// vector x ∈ ℝ^12 (4 child dt magnitudes + 8 grandchild dt magnitudes) that
// maximizes the area of the quadrilateral formed by the tree's 4 pair mean
// points, subject to each x_i lying in [dt_lo, dt_hi] and each paired
// grandchild distance staying within a meeting-distance tolerance.
//
// As with package optimizer, gonum.org/v1/gonum/optimize has no constrained
// solver, so both constraints are folded into the objective as quadratic
// penalties around a Nelder-Mead search. The result is clamped to
// [dt_lo, dt_hi] before being returned regardless of how the solver
// converged, so a caller never receives a vector that violates dt_hi.
package pairopt
