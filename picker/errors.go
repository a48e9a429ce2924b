package picker

import "errors"

var (
	// ErrNilGraph indicates New was given a nil real graph.
	ErrNilGraph = errors.New("picker: graph is nil")

	// ErrNonPositiveThreshold indicates SetThreshold was given a value <= 0.
	ErrNonPositiveThreshold = errors.New("picker: close threshold must be positive")

	// ErrEmptyGraph is returned by Update when the real graph has no
	// spores yet; the accompanying Report is empty but valid.
	ErrEmptyGraph = errors.New("picker: graph has no spores")
)
