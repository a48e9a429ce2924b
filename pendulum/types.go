package pendulum

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// System holds the immutable physical parameters of the single-link
// pendulum: gravity g, length ℓ, mass m, damping d, and the control
// bound u_max such that control ∈ [-u_max, u_max].
//
// m is stored but does not appear in the linearization below (the reduced
// model folds mass into the normalized damping/gravity terms); it is kept
// on System for callers building a full nonlinear simulator to compare
// against.
type System struct {
	Gravity    float64
	Length     float64
	Mass       float64
	Damping    float64
	ControlMax float64

	mu        sync.Mutex
	linCache  map[float64]linEntry
	discCache map[discKey]discEntry
}

type linEntry struct {
	A, B *mat.Dense
}

type discKey struct {
	aHash, bHash string
	dt           float64
}

type discEntry struct {
	Ad, Bd *mat.Dense
}

// New constructs a System with empty memoization tables.
func New(gravity, length, mass, damping, controlMax float64) *System {
	return &System{
		Gravity:    gravity,
		Length:     length,
		Mass:       mass,
		Damping:    damping,
		ControlMax: controlMax,
		linCache:   make(map[float64]linEntry),
		discCache:  make(map[discKey]discEntry),
	}
}
