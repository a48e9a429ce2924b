package sporelogic

import "errors"

// ErrNilCostFunc indicates a nil CostFunc was supplied to NewSpore.
var ErrNilCostFunc = errors.New("sporelogic: cost function is nil")

// ErrNonPositiveSampleCount indicates SampleControls was asked for N <= 0 controls.
var ErrNonPositiveSampleCount = errors.New("sporelogic: sample count must be positive")
