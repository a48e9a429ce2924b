package sporelogic

import (
	"math"
	"math/rand"

	"github.com/vgunyavoy/sporegraph/idmanager"
)

// Spore is a sampled state in the pendulum phase plane plus its
// bookkeeping: cost relative to a goal, the optimizer's cached
// optimal (control, dt) pair, and Role/Lifecycle tags.
type Spore struct {
	ID    idmanager.SporeID
	State Point2D
	Goal  Point2D

	Cost float64 // invariant: Cost >= 0 for every spore

	OptimalControl float64
	OptimalDt      float64 // 0 means "no useful step"

	Role      Role
	Lifecycle Lifecycle

	// Weights parameterizes CostFunc for this spore; stored so Evolve can
	// recompute Cost without the caller re-threading it every call.
	Weights [2]float64
	costFn  CostFunc
}

// NewSpore constructs a Spore at initial relative to goal, with cost
// evaluated via costFn. Role defaults to
// RoleNormal and Lifecycle to LifecycleAlive; callers flip Role to RoleGoal
// for the goal spore immediately after construction.
func NewSpore(id idmanager.SporeID, initial, goal Point2D, weights [2]float64, costFn CostFunc) (*Spore, error) {
	if costFn == nil {
		return nil, ErrNilCostFunc
	}

	return &Spore{
		ID:        id,
		State:     initial,
		Goal:      goal,
		Cost:      costFn(initial, goal, weights),
		Role:      RoleNormal,
		Lifecycle: LifecycleAlive,
		Weights:   weights,
		costFn:    costFn,
	}, nil
}

// Evolve updates s to newState and recomputes Cost. The actual dynamical
// step happens in the caller (manager/optimizer), which passes the
// resulting state in here so sporelogic never depends on the pendulum
// package.
func (s *Spore) Evolve(newState Point2D) {
	s.State = newState
	s.Cost = s.costFn(newState, s.Goal, s.Weights)
}

// CheckDeath marks s LifecycleDead iff its cached OptimalDt is within
// zeroTolerance of zero and s is not the goal. It is a no-op once s is
// already LifecycleCompleted (completed spores are never resurrected).
func (s *Spore) CheckDeath(zeroTolerance float64) {
	if s.Lifecycle == LifecycleCompleted {
		return
	}
	if s.Role != RoleGoal && math.Abs(s.OptimalDt) <= zeroTolerance {
		s.OptimalDt = 0
		s.Lifecycle = LifecycleDead
	}
}

// Evolvable reports whether s may still be extended by the evolution loop:
// alive, not completed, and not the goal.
func (s *Spore) Evolvable() bool {
	return s.Role != RoleGoal && s.Lifecycle == LifecycleAlive
}

// MarkCompleted transitions s to LifecycleCompleted, used when a trajectory
// merges into an existing spore.
func (s *Spore) MarkCompleted() {
	if s.Lifecycle != LifecycleDead {
		s.Lifecycle = LifecycleCompleted
	}
}

// Color is a pure function of Role and Lifecycle over a caller-supplied
// palette. Unknown/missing keys fall back to "normal".
func (s *Spore) Color(palette map[string]string) string {
	var key string
	switch {
	case s.Lifecycle == LifecycleDead:
		key = "dead"
	case s.Role == RoleGoal:
		key = "goal"
	case s.Role == RoleGhost:
		key = "ghost"
	case s.Role == RoleCandidate:
		key = "candidate"
	case s.Lifecycle == LifecycleCompleted:
		key = "merged"
	default:
		key = "normal"
	}
	if c, ok := palette[key]; ok {
		return c
	}
	return palette["normal"]
}

// SampleControls draws n candidate controls in [-uMax, uMax].
// SamplingUniform uses rng (must be non-nil); SamplingMesh is deterministic
// and ignores rng.
func SampleControls(n int, method SamplingMethod, uMax float64, rng *rand.Rand) ([]float64, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSampleCount
	}

	controls := make([]float64, n)
	switch method {
	case SamplingMesh:
		if n == 1 {
			controls[0] = 0
			return controls, nil
		}
		step := 2 * uMax / float64(n-1)
		for i := 0; i < n; i++ {
			controls[i] = -uMax + step*float64(i)
		}
	default: // SamplingUniform
		for i := 0; i < n; i++ {
			controls[i] = -uMax + rng.Float64()*2*uMax
		}
	}

	return controls, nil
}

// StepFunc integrates one dynamical step; it is the seam sporelogic uses
// to call into pendulum without importing it directly.
type StepFunc func(state Point2D, control, dt float64) Point2D

// SimulateControls returns the next states reached from state for each
// (control, dt) pair, used by the spore manager's sibling ghost previews
// and by the optimizer's candidate scan.
func SimulateControls(state Point2D, controls []float64, dt float64, step StepFunc) []Point2D {
	out := make([]Point2D, len(controls))
	for i, u := range controls {
		out[i] = step(state, u, dt)
	}
	return out
}
