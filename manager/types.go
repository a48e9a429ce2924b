package manager

import (
	"math/rand"
	"sync"

	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/logging"
	"github.com/vgunyavoy/sporegraph/optimizer"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// SiblingPreview is one of the four ephemeral previews maintained for the
// latest evolvable spore: visualized, never inserted into the graph.
type SiblingPreview struct {
	Control float64
	State   sporelogic.Point2D
}

// Manager owns the real graph, the per-spore optimizer, and the ID
// manager, and drives the evolution loop.
type Manager struct {
	mu sync.Mutex

	g      *graph.Graph
	solver *optimizer.Solver
	ids    *idmanager.Manager
	step   sporelogic.StepFunc
	cost   sporelogic.CostFunc
	sink   logging.Sink

	evolutionTol    float64
	safetyStepBound int
	spawnRegion     SpawnRegion
	minRadius       float64
	controlMax      float64

	candidates  []*sporelogic.Spore
	rng         *rand.Rand
	lastGoal    sporelogic.Point2D
	lastWeights [2]float64

	current    idmanager.SporeID
	hasCurrent bool
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithLogger overrides the default discard sink.
func WithLogger(sink logging.Sink) Option {
	return func(m *Manager) { m.sink = sink }
}

// WithRand overrides the default source of randomness, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) { m.rng = rng }
}

// New constructs a Manager. g, solver, ids, step, and cost must be non-nil.
func New(
	g *graph.Graph,
	solver *optimizer.Solver,
	ids *idmanager.Manager,
	step sporelogic.StepFunc,
	cost sporelogic.CostFunc,
	evolutionTol float64,
	safetyStepBound int,
	spawnRegion SpawnRegion,
	minRadius float64,
	controlMax float64,
	opts ...Option,
) (*Manager, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if ids == nil {
		return nil, ErrNilIDManager
	}
	if step == nil {
		return nil, ErrNilStepFunc
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	if !spawnRegion.valid() || minRadius <= 0 {
		return nil, ErrInvalidSpawnRegion
	}
	if safetyStepBound <= 0 {
		safetyStepBound = 100
	}

	m := &Manager{
		g:               g,
		solver:          solver,
		ids:             ids,
		step:            step,
		cost:            cost,
		sink:            logging.Discard(),
		evolutionTol:    evolutionTol,
		safetyStepBound: safetyStepBound,
		spawnRegion:     spawnRegion,
		minRadius:       minRadius,
		controlMax:      controlMax,
		rng:             rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}
