package pairopt

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/vgunyavoy/sporegraph/tree"
)

const penaltyWeight = 1e6

// pairDistances returns the Euclidean distance between the two
// grandchildren of each adjacent pair in tr.SortedIndices, in pair order.
func pairDistances(tr *tree.Tree) []float64 {
	out := make([]float64, 0, len(tr.SortedIndices)/2)
	for k := 0; k+1 < len(tr.SortedIndices); k += 2 {
		a := tr.Grandchildren[tr.SortedIndices[k]].State
		b := tr.Grandchildren[tr.SortedIndices[k+1]].State
		out = append(out, a.Dist(b))
	}
	return out
}

// unpack splits x ∈ ℝ^12 into the 4 child magnitudes and 8 grandchild
// magnitudes UpdatePositions expects.
func unpack(x []float64) (children [4]float64, gc [8]float64) {
	copy(children[:], x[:4])
	copy(gc[:], x[4:12])
	return
}

// Optimize searches, starting from tr's current signed dt vector, for an
// x* ∈ ℝ^12 maximizing the quadrilateral area formed by the sorted pair
// mean points, subject to Bounds and meetingEpsilon.
// tr must already have exactly 4 children, 8 grandchildren, and a non-nil
// SortedIndices (i.e. CreateChildren → CreateGrandchildren →
// SortAndPairGrandchildren must have run, in that order, with no merge
// reducing the grandchild count below 8).
//
// tr is mutated in place by every trial evaluation (UpdatePositions is the
// cheap inner loop built for exactly this); by the time Optimize returns,
// tr reflects whichever of the original or optimized vector won the
// feasible-area comparison.
func Optimize(tr *tree.Tree, bounds Bounds, meetingEpsilon float64, maxIterations int) (Result, error) {
	if tr == nil {
		return Result{}, ErrNilTree
	}
	if !bounds.valid() {
		return Result{}, ErrInvalidBounds
	}
	if tr.SortedIndices == nil || len(tr.Grandchildren) != 8 {
		return Result{}, ErrNotPaired
	}
	if maxIterations <= 0 {
		maxIterations = 1500
	}

	x0 := make([]float64, 12)
	for i := 0; i < 4; i++ {
		x0[i] = math.Abs(tr.Children[i].Dt)
	}
	for _, gc := range tr.Grandchildren {
		x0[4+gc.Index] = math.Abs(gc.Dt)
	}
	// The tree's current magnitudes may exceed DtHi (the DT Manager can
	// shrink dt after the tree was built); the returned vector must never
	// violate the bounds, so the baseline is clamped up front.
	for i := range x0 {
		x0[i] = bounds.clamp(x0[i])
	}

	evaluate := func(x []float64) (area float64, maxViol float64, perPair []float64) {
		children, gc := unpack(x)
		tr.UpdatePositions(children, gc)
		_ = tr.CalculateMeanPoints()
		area = tree.QuadrilateralArea(tr.MeanPoints)

		perPair = pairDistances(tr)
		for _, d := range perPair {
			if d > maxViol {
				maxViol = d
			}
		}
		return
	}

	originalArea, originalMaxViol, originalPerPair := evaluate(x0)

	objective := func(x []float64) float64 {
		clamped := make([]float64, 12)
		var boundPenalty float64
		for i, v := range x {
			c := bounds.clamp(v)
			clamped[i] = c
			if d := v - c; d != 0 {
				boundPenalty += penaltyWeight * d * d
			}
		}

		area, maxViol, _ := evaluate(clamped)

		var constraintPenalty float64
		if maxViol > meetingEpsilon {
			d := maxViol - meetingEpsilon
			constraintPenalty = penaltyWeight * d * d
		}

		// Minimize negative area (we want to maximize it) plus penalties.
		return -area + boundPenalty + constraintPenalty
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{MajorIterations: maxIterations}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil && res == nil {
		return Result{}, ErrSolveFailed
	}

	candidate := make([]float64, 12)
	for i, v := range res.X {
		candidate[i] = bounds.clamp(v)
	}
	optimizedArea, optimizedMaxViol, optimizedPerPair := evaluate(candidate)

	// "Whichever has the larger feasible area": when exactly one of the two
	// vectors satisfies the meeting constraint, feasibility wins over area.
	useCandidate := optimizedArea > originalArea
	if (originalMaxViol <= meetingEpsilon) != (optimizedMaxViol <= meetingEpsilon) {
		useCandidate = optimizedMaxViol <= meetingEpsilon
	}

	var final []float64
	var finalArea, finalMaxViol float64
	var finalPerPair []float64
	if useCandidate {
		final, finalArea, finalMaxViol, finalPerPair = candidate, optimizedArea, optimizedMaxViol, optimizedPerPair
	} else {
		final, finalArea, finalMaxViol, finalPerPair = x0, originalArea, originalMaxViol, originalPerPair
	}

	// Leave tr in the state matching the returned vector.
	fc, fgc := unpack(final)
	tr.UpdatePositions(fc, fgc)
	_ = tr.CalculateMeanPoints()

	var vec [12]float64
	copy(vec[:], final)

	return Result{
		Success:       finalMaxViol <= meetingEpsilon,
		OriginalArea:  originalArea,
		OptimizedArea: finalArea,
		Improvement:   finalArea - originalArea,
		ConstraintViolations: ConstraintViolations{
			Max:     finalMaxViol,
			PerPair: finalPerPair,
		},
		Vector: vec,
	}, nil
}
