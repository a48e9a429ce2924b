package optimizer

import "errors"

var (
	// ErrNilSpore indicates FindOptimalStep was given a nil spore.
	ErrNilSpore = errors.New("optimizer: spore is nil")

	// ErrNilStepFunc indicates a Solver was constructed without a step function.
	ErrNilStepFunc = errors.New("optimizer: step function is nil")

	// ErrNilCostFunc indicates a Solver was constructed without a cost function.
	ErrNilCostFunc = errors.New("optimizer: cost function is nil")

	// ErrInvalidBounds indicates dt_min > dt_max or a non-positive control bound.
	ErrInvalidBounds = errors.New("optimizer: invalid bounds")

	// ErrSolveFailed indicates the underlying solver returned an error.
	ErrSolveFailed = errors.New("optimizer: solve failed")
)
