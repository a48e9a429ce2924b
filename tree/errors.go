package tree

import "errors"

var (
	// ErrNilStepFunc indicates New was given a nil step function.
	ErrNilStepFunc = errors.New("tree: step function is nil")

	// ErrWrongChildCount indicates CreateChildren was not given exactly 4 magnitudes.
	ErrWrongChildCount = errors.New("tree: dt_children must have exactly 4 entries")

	// ErrWrongGrandchildCount indicates CreateGrandchildren was not given exactly 8 magnitudes.
	ErrWrongGrandchildCount = errors.New("tree: dt_gc must have exactly 8 entries")

	// ErrChildrenNotBuilt indicates an operation ran before CreateChildren.
	ErrChildrenNotBuilt = errors.New("tree: children not built yet")

	// ErrGrandchildrenNotBuilt indicates an operation ran before CreateGrandchildren.
	ErrGrandchildrenNotBuilt = errors.New("tree: grandchildren not built yet")

	// ErrOddGrandchildCount indicates an odd number of grandchildren survive
	// merging, which cannot be evenly paired.
	ErrOddGrandchildCount = errors.New("tree: odd grandchild count cannot be paired")

	// ErrPairingImpossible is the hard pairing-assertion failure: the four
	// adjacent pairs could not be arranged to each contain grandchildren
	// from two different parents.
	ErrPairingImpossible = errors.New("tree: cannot pair grandchildren from distinct parents")
)
