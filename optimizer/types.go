package optimizer

import (
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// Bounds is the box constraint of the step search: u ∈ [-ControlMax,
// ControlMax] and dt ∈ [DtMin, DtMax].
type Bounds struct {
	ControlMax float64
	DtMin      float64
	DtMax      float64
}

func (b Bounds) valid() bool {
	return b.ControlMax > 0 && b.DtMin > 0 && b.DtMin <= b.DtMax
}

func (b Bounds) clampControl(u float64) float64 {
	if u < -b.ControlMax {
		return -b.ControlMax
	}
	if u > b.ControlMax {
		return b.ControlMax
	}
	return u
}

func (b Bounds) clampDt(dt float64) float64 {
	if dt < b.DtMin {
		return b.DtMin
	}
	if dt > b.DtMax {
		return b.DtMax
	}
	return dt
}

// Result is the outcome of FindOptimalStep.
type Result struct {
	Control    float64
	Dt         float64 // 0 means no useful step exists (spore is dead)
	Cost       float64 // cost of the state reached by (Control, Dt)
	Iterations int
	Converged  bool
}

// Solver runs the bounded per-spore step search. It holds no per-call state
// and is safe for concurrent use once constructed.
type Solver struct {
	bounds        Bounds
	maxIterations int
	zeroTolerance float64
	step          sporelogic.StepFunc
	cost          sporelogic.CostFunc
}

// New constructs a Solver. step and cost must be non-nil; bounds must
// satisfy ControlMax > 0 and 0 < DtMin <= DtMax.
func New(bounds Bounds, maxIterations int, zeroTolerance float64, step sporelogic.StepFunc, cost sporelogic.CostFunc) (*Solver, error) {
	if step == nil {
		return nil, ErrNilStepFunc
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	if !bounds.valid() {
		return nil, ErrInvalidBounds
	}
	if maxIterations <= 0 {
		maxIterations = 200
	}

	return &Solver{
		bounds:        bounds,
		maxIterations: maxIterations,
		zeroTolerance: zeroTolerance,
		step:          step,
		cost:          cost,
	}, nil
}
