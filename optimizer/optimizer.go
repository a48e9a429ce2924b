package optimizer

import (
	"gonum.org/v1/gonum/optimize"

	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// penaltyWeight scales the out-of-bounds quadratic penalty added to the
// objective; large enough that the unconstrained solver never prefers an
// infeasible point over a feasible one within the search region.
const penaltyWeight = 1e6

// FindOptimalStep chooses the (u*, dt*) minimizing the cost of stepping
// s.State under (u, dt), subject to the Solver's Bounds. If the solved dt*
// lies within ZeroTolerance of DtMin and stepping there lowers the cost by
// no more than ZeroTolerance, dt* is snapped to exactly 0, signalling that
// s has no useful step (death).
//
// No global-optimum guarantee is made or required: determinism and
// monotone cost improvement over s.Cost are what the evolution loop's
// termination argument needs, and Nelder-Mead from a fixed starting point
// gives both.
func (o *Solver) FindOptimalStep(s *sporelogic.Spore) (Result, error) {
	if s == nil {
		return Result{}, ErrNilSpore
	}

	objective := func(x []float64) float64 {
		u, dt := x[0], x[1]

		var penalty float64
		if d := u - o.bounds.clampControl(u); d != 0 {
			penalty += penaltyWeight * d * d
		}
		if d := dt - o.bounds.clampDt(dt); d != 0 {
			penalty += penaltyWeight * d * d
		}

		cu := o.bounds.clampControl(u)
		cdt := o.bounds.clampDt(dt)
		next := o.step(s.State, cu, cdt)

		return o.cost(next, s.Goal, s.Weights) + penalty
	}

	x0 := []float64{s.OptimalControl, (o.bounds.DtMin + o.bounds.DtMax) / 2}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{
		MajorIterations: o.maxIterations,
	}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil && res == nil {
		return Result{}, ErrSolveFailed
	}

	u := o.bounds.clampControl(res.X[0])
	dt := o.bounds.clampDt(res.X[1])
	if dt <= o.bounds.DtMin+o.zeroTolerance {
		// Only snap to death if the clamped-low solution genuinely fails to
		// improve cost; a solver that converges to the lower bound because
		// that is the true optimum is not dead, it is just slow.
		baseline := o.cost(s.State, s.Goal, s.Weights)
		atBound := o.cost(o.step(s.State, u, dt), s.Goal, s.Weights)
		if atBound >= baseline-o.zeroTolerance {
			dt = 0
		}
	}

	finalState := s.State
	if dt != 0 {
		finalState = o.step(s.State, u, dt)
	}

	return Result{
		Control:    u,
		Dt:         dt,
		Cost:       o.cost(finalState, s.Goal, s.Weights),
		Iterations: res.Stats.MajorIterations,
		Converged:  res.Status == optimize.Success,
	}, nil
}
