package pendulum

import "errors"

// ErrNilSystem indicates a method was called on a nil *System.
var ErrNilSystem = errors.New("pendulum: system is nil")

// ErrZeroLength indicates Length is zero, which would divide by zero in Linearize.
var ErrZeroLength = errors.New("pendulum: length must be non-zero")
