package prediction

import (
	"sync"

	"github.com/vgunyavoy/sporegraph/dtctl"
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
	"github.com/vgunyavoy/sporegraph/tree"
)

// Manager owns the ephemeral ghost preview graph. It is one of two
// coexisting Graph instances a driver holds: the other is the real,
// materialized graph the rest of the system commits to.
type Manager struct {
	mu sync.Mutex

	ghost *graph.Graph
	ids   *idmanager.Manager
	dt    *dtctl.Manager
	step  sporelogic.StepFunc

	grandchildFactor float64 // grandchild dt = factor * dtctl.CurrentDt()
	controlMax       float64

	current *tree.Tree

	// cached pair-optimized vector, replayed over every rebuild until
	// cleared.
	hasVector   bool
	vector      [12]float64
	dtBaseline  float64
	hasCursor   bool
	lastCursor  sporelogic.Point2D
	unsubscribe func()
}

// New constructs a Manager. ghost must be a Graph instance distinct from
// the real graph; dt is the DT Manager whose on_change notifications drive
// rescaling. grandchildFactor scales dtctl's current dt down to the
// grandchild step size.
func New(ghost *graph.Graph, ids *idmanager.Manager, dt *dtctl.Manager, step sporelogic.StepFunc, controlMax, grandchildFactor float64) (*Manager, error) {
	if ghost == nil {
		return nil, ErrNilGhostGraph
	}
	if dt == nil {
		return nil, ErrNilDtManager
	}
	if step == nil {
		return nil, ErrNilStepFunc
	}

	m := &Manager{
		ghost:            ghost,
		ids:              ids,
		dt:               dt,
		step:             step,
		controlMax:       controlMax,
		grandchildFactor: grandchildFactor,
	}
	m.unsubscribe = dt.OnChange(m.onDtChange)

	return m, nil
}

// Close unsubscribes the Manager from its DT Manager. Safe to call once.
func (m *Manager) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Tree returns the Manager's current ghost tree, or nil if OnCursorUpdate
// has not run yet.
func (m *Manager) Tree() *tree.Tree {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// SetOptimizedVector caches a pair-optimizer result vector to be replayed
// over every subsequent ghost tree rebuild, and immediately
// rebuilds against the last known cursor using it. baseline is the dt the
// vector was computed against, used by the rescaling rule.
func (m *Manager) SetOptimizedVector(vector [12]float64, baseline float64) error {
	m.mu.Lock()
	m.hasVector = true
	m.vector = vector
	m.dtBaseline = baseline
	cursor, ok := m.lastCursor, m.hasCursor
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return m.OnCursorUpdate(cursor)
}

// ClearOptimizedVector drops the cached vector; subsequent rebuilds use
// plain uniform dt magnitudes again.
func (m *Manager) ClearOptimizedVector() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hasVector = false
	m.vector = [12]float64{}
	m.dtBaseline = 0
}
