package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgunyavoy/sporegraph/sporelogic"
)

func identityStep(state sporelogic.Point2D, control, dt float64) sporelogic.Point2D {
	return sporelogic.Point2D{
		Theta:    state.Theta + control*dt,
		ThetaDot: state.ThetaDot,
	}
}

func TestNew_RejectsNilDependencies(t *testing.T) {
	bounds := Bounds{ControlMax: 1, DtMin: 0.01, DtMax: 0.5}

	_, err := New(bounds, 100, 1e-4, nil, sporelogic.QuadraticCost)
	assert.ErrorIs(t, err, ErrNilStepFunc)

	_, err = New(bounds, 100, 1e-4, identityStep, nil)
	assert.ErrorIs(t, err, ErrNilCostFunc)
}

func TestNew_RejectsInvalidBounds(t *testing.T) {
	_, err := New(Bounds{ControlMax: 0, DtMin: 0.01, DtMax: 0.5}, 100, 1e-4, identityStep, sporelogic.QuadraticCost)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = New(Bounds{ControlMax: 1, DtMin: 0.5, DtMax: 0.01}, 100, 1e-4, identityStep, sporelogic.QuadraticCost)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestFindOptimalStep_MovesTowardGoal(t *testing.T) {
	bounds := Bounds{ControlMax: 2, DtMin: 0.01, DtMax: 0.2}
	solver, err := New(bounds, 500, 1e-6, identityStep, sporelogic.QuadraticCost)
	require.NoError(t, err)

	s, err := sporelogic.NewSpore(1, sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.QuadraticCost)
	require.NoError(t, err)

	res, err := solver.FindOptimalStep(s)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Control, -bounds.ControlMax)
	assert.LessOrEqual(t, res.Control, bounds.ControlMax)
	if res.Dt != 0 {
		assert.GreaterOrEqual(t, res.Dt, bounds.DtMin)
		assert.LessOrEqual(t, res.Dt, bounds.DtMax)
	}
	assert.LessOrEqual(t, res.Cost, s.Cost)
}

func TestFindOptimalStep_NilSporeRejected(t *testing.T) {
	bounds := Bounds{ControlMax: 1, DtMin: 0.01, DtMax: 0.5}
	solver, err := New(bounds, 100, 1e-4, identityStep, sporelogic.QuadraticCost)
	require.NoError(t, err)

	_, err = solver.FindOptimalStep(nil)
	assert.ErrorIs(t, err, ErrNilSpore)
}

func TestFindOptimalStep_AtGoalSnapsDeadOrNearZeroCost(t *testing.T) {
	bounds := Bounds{ControlMax: 1, DtMin: 0.01, DtMax: 0.2}
	solver, err := New(bounds, 500, 1e-4, identityStep, sporelogic.QuadraticCost)
	require.NoError(t, err)

	s, err := sporelogic.NewSpore(1, sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 0, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.QuadraticCost)
	require.NoError(t, err)

	res, err := solver.FindOptimalStep(s)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Cost, 1e-6)
}
