// Package pendulum implements the single-link damped pendulum dynamics:
// linearization around a state, discretization via the matrix exponential
// of the augmented block [[A,B],[0,0]], and a one-step integrator that
// supports negative dt.
//
// Linearization and discretization are each memoized: linearize keys on
// θ₀ rounded to 1e-6; discretize keys on (hash(A), hash(B), dt rounded to
// 1e-8). Memoization dominates because the search tree reuses
// θ-equivalent children and a small palette of dt values across many
// calls per expansion.
//
// The matrix exponential itself is computed by gonum.org/v1/gonum/mat's
// Dense.Exp (scaling-and-squaring with a Padé approximant), not
// hand-rolled; the planner's own geometry stays plain 2-D arithmetic.
package pendulum
