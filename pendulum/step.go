package pendulum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// Step integrates one dynamical step from state under control u over dt:
// state' = A_d·state + B_d·u. dt may be negative, which supports the
// backward-time integration the spore tree uses for reversed-control
// grandchildren.
func (s *System) Step(state sporelogic.Point2D, u, dt float64) (sporelogic.Point2D, error) {
	A, B, err := s.Linearize(state.Theta)
	if err != nil {
		return sporelogic.Point2D{}, err
	}
	Ad, Bd, err := s.Discretize(A, B, dt)
	if err != nil {
		return sporelogic.Point2D{}, err
	}

	x := mat.NewVecDense(2, []float64{state.Theta, state.ThetaDot})
	var axd, bud mat.VecDense
	axd.MulVec(Ad, x)
	bud.MulVec(Bd, mat.NewVecDense(1, []float64{u}))

	var next mat.VecDense
	next.AddVec(&axd, &bud)

	return sporelogic.Point2D{Theta: next.AtVec(0), ThetaDot: next.AtVec(1)}, nil
}

// StepFunc adapts s into a sporelogic.StepFunc, silently returning state
// unchanged on an internal linearization failure (New does not validate
// Length; a zero Length makes Linearize fail) so callers that only accept
// sporelogic.StepFunc's simpler signature can use System directly.
func (s *System) StepFunc() sporelogic.StepFunc {
	return func(state sporelogic.Point2D, control, dt float64) sporelogic.Point2D {
		next, err := s.Step(state, control, dt)
		if err != nil {
			return state
		}
		return next
	}
}
