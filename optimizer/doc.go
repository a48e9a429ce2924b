// Package optimizer implements the per-spore step search: given a Spore,
// choose the control u and duration dt that most reduce its cost, subject
// to u ∈ [-u_max, u_max] and dt ∈ [dt_min, dt_max].
//
// gonum.org/v1/gonum/optimize has no native support for box-constrained
// nonlinear minimization (its Method implementations, Nelder-Mead,
// gradient descent, BFGS, are all unconstrained), so the bound is enforced
// by a quadratic penalty added to the objective rather than a constrained
// solver, mirroring the penalty-method approach the pair optimizer
// also needs for its equality-like meeting-distance constraints. The result
// is clamped into range before being returned regardless of how close the
// solver landed, so a caller never observes an out-of-bound (u*, dt*) even
// if the penalty weight under-corrects near the boundary.
package optimizer
