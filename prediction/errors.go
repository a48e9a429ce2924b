package prediction

import "errors"

var (
	// ErrNilStepFunc is returned by New when step is nil.
	ErrNilStepFunc = errors.New("prediction: step function is nil")
	// ErrNilGhostGraph is returned by New when ghostGraph is nil.
	ErrNilGhostGraph = errors.New("prediction: ghost graph is nil")
	// ErrNilDtManager is returned by New when dt is nil.
	ErrNilDtManager = errors.New("prediction: dt manager is nil")
	// ErrNoCursor reports that OnCursorUpdate has never run. No function of
	// this package returns it: a dt change before the first cursor update
	// skips the rescale.
	ErrNoCursor = errors.New("prediction: no cursor state recorded yet")
)
