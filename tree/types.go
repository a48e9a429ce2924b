package tree

import (
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// Child is one of the tree's four first-level nodes. Index order is fixed
// as (forward·u_max, backward·u_max, forward·u_min, backward·u_min).
type Child struct {
	Index   int
	State   sporelogic.Point2D
	Control float64
	Dt      float64 // signed; sign encodes time direction
}

// Grandchild is one of a child's two reversed-control descendants.
// MergedFrom is non-nil iff this grandchild is the result of collapsing
// two close grandchildren; its two entries are the original global
// indices k1, k2.
type Grandchild struct {
	Index       int // global index k = 2*ParentIndex + j at creation time
	ParentIndex int
	State       sporelogic.Point2D
	Control     float64
	Dt          float64 // signed
	MergedFrom  []int
}

// Tree is the fixed-shape 1+4+8 local search structure.
type Tree struct {
	Root     sporelogic.Point2D
	Children [4]Child

	// Grandchildren starts at 8 entries (2 per child) and may shrink after
	// MergeCloseGrandchildren collapses close pairs.
	Grandchildren []Grandchild

	// SortedIndices is the CCW-sorted, roll-adjusted permutation of
	// Grandchildren produced by SortAndPairGrandchildren; nil before that
	// call runs.
	SortedIndices []int

	// MeanPoints holds the midpoint of each adjacent pair in SortedIndices,
	// one per pair, after CalculateMeanPoints runs.
	MeanPoints []sporelogic.Point2D

	// PairingCandidateMap records, for each grandchild's global index, the
	// global indices of grandchildren from other parents it could legally
	// pair with; populated by SortAndPairGrandchildren, kept for
	// diagnostics.
	PairingCandidateMap map[int][]int

	step sporelogic.StepFunc
}

// childControlSign is the fixed (control, sign) pattern for the 4 children:
// index 0 forward_max, 1 backward_max, 2 forward_min, 3 backward_min.
func childControlSign(index int, uMax float64) (control float64, sign float64) {
	switch index {
	case 0:
		return uMax, 1
	case 1:
		return uMax, -1
	case 2:
		return -uMax, 1
	default:
		return -uMax, -1
	}
}
