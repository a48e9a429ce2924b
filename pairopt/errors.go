package pairopt

import "errors"

var (
	// ErrNilTree indicates Optimize was given a nil tree.
	ErrNilTree = errors.New("pairopt: tree is nil")

	// ErrInvalidBounds indicates DtLo > DtHi or a non-positive DtLo.
	ErrInvalidBounds = errors.New("pairopt: invalid bounds")

	// ErrNotPaired indicates Optimize was called before the tree's
	// SortAndPairGrandchildren/CalculateMeanPoints had run.
	ErrNotPaired = errors.New("pairopt: tree is not sorted and paired")

	// ErrSolveFailed indicates the underlying solver returned an error.
	ErrSolveFailed = errors.New("pairopt: solve failed")
)
