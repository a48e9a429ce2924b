package manager

import "errors"

var (
	// ErrNilGraph indicates New was given a nil graph.
	ErrNilGraph = errors.New("manager: graph is nil")

	// ErrNilSolver indicates New was given a nil optimizer solver.
	ErrNilSolver = errors.New("manager: solver is nil")

	// ErrNilIDManager indicates New was given a nil idmanager.Manager.
	ErrNilIDManager = errors.New("manager: id manager is nil")

	// ErrNilStepFunc indicates New was given a nil step function.
	ErrNilStepFunc = errors.New("manager: step function is nil")

	// ErrNilCostFunc indicates New was given a nil cost function.
	ErrNilCostFunc = errors.New("manager: cost function is nil")

	// ErrNoCandidates indicates ActivateRandomCandidate was called with an
	// empty candidate pool.
	ErrNoCandidates = errors.New("manager: no candidates available")

	// ErrInvalidSpawnRegion indicates a degenerate spawn rectangle (min >= max
	// on either axis) or a non-positive radius.
	ErrInvalidSpawnRegion = errors.New("manager: invalid spawn region")

	// ErrNoCurrentSpore indicates GenerateNewSpore was called before any
	// spore was seeded or activated.
	ErrNoCurrentSpore = errors.New("manager: no current spore")
)
