package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgunyavoy/sporegraph/dtctl"
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

func linearStep(state sporelogic.Point2D, control, dt float64) sporelogic.Point2D {
	return sporelogic.Point2D{Theta: state.Theta + control*dt, ThetaDot: state.ThetaDot + dt}
}

func buildManager(t *testing.T) (*Manager, *dtctl.Manager) {
	t.Helper()

	g := graph.New(nil)
	ids := idmanager.New()
	dt, err := dtctl.New(0.1)
	require.NoError(t, err)

	m, err := New(g, ids, dt, linearStep, 1.0, 0.5)
	require.NoError(t, err)
	return m, dt
}

func TestOnCursorUpdate_PopulatesGhostGraph(t *testing.T) {
	m, _ := buildManager(t)
	require.NoError(t, m.OnCursorUpdate(sporelogic.Point2D{}))

	stats := m.ghost.Stats()
	assert.Equal(t, 13, stats.TotalSpores) // 1 root + 4 children + 8 grandchildren
	assert.Equal(t, 12, stats.TotalLinks)  // 4 root->child + 8 child->grandchild
}

func TestOnCursorUpdate_ClearsPriorGhosts(t *testing.T) {
	m, _ := buildManager(t)
	require.NoError(t, m.OnCursorUpdate(sporelogic.Point2D{Theta: 0}))
	before := m.ghost.Stats().TotalSpores

	require.NoError(t, m.OnCursorUpdate(sporelogic.Point2D{Theta: 1}))
	after := m.ghost.Stats().TotalSpores

	assert.Equal(t, before, after) // rebuilt fresh, not accumulated
}

func TestAddGhostLink_TypeFollowsControlSign(t *testing.T) {
	m, _ := buildManager(t)
	require.NoError(t, m.OnCursorUpdate(sporelogic.Point2D{}))

	var sawMax, sawMin bool
	for _, l := range m.ghost.Links() {
		switch l.Type {
		case graph.LinkGhostMax:
			sawMax = true
			assert.GreaterOrEqual(t, l.Control, 0.0)
		case graph.LinkGhostMin:
			sawMin = true
			assert.Less(t, l.Control, 0.0)
		default:
			t.Fatalf("unexpected ghost link type %v", l.Type)
		}
	}
	assert.True(t, sawMax)
	assert.True(t, sawMin)
}

func TestAddGhostLink_DirectionFollowsDtSign(t *testing.T) {
	m, _ := buildManager(t)

	require.NoError(t, m.ghost.AddSpore(mustGhost(t, 1)))
	require.NoError(t, m.ghost.AddSpore(mustGhost(t, 2)))

	require.NoError(t, m.addGhostLink(1, 2, 1.0, 0.2))
	l := m.ghost.Links()[0]
	assert.Equal(t, idmanager.SporeID(1), l.Parent)
	assert.Equal(t, idmanager.SporeID(2), l.Child)

	require.NoError(t, m.ghost.RemoveEdge(1, 2, graph.LinkGhostMax))
	require.NoError(t, m.addGhostLink(1, 2, 1.0, -0.2))
	l = m.ghost.Links()[0]
	assert.Equal(t, idmanager.SporeID(2), l.Parent)
	assert.Equal(t, idmanager.SporeID(1), l.Child)
}

func mustGhost(t *testing.T, id idmanager.SporeID) *sporelogic.Spore {
	t.Helper()
	s, err := sporelogic.NewSpore(id, sporelogic.Point2D{}, sporelogic.Point2D{}, [2]float64{1, 1}, sporelogic.QuadraticCost)
	require.NoError(t, err)
	s.Role = sporelogic.RoleGhost
	return s
}

func TestSetOptimizedVector_RebuildsImmediately(t *testing.T) {
	m, _ := buildManager(t)
	require.NoError(t, m.OnCursorUpdate(sporelogic.Point2D{}))

	var vec [12]float64
	for i := range vec {
		vec[i] = 0.05
	}
	require.NoError(t, m.SetOptimizedVector(vec, 0.1))

	tr := m.Tree()
	require.NotNil(t, tr)
	for _, c := range tr.Children {
		assert.InDelta(t, 0.05, absFloat(c.Dt), 1e-9)
	}
}

func TestOnDtChange_RescalesCachedVector(t *testing.T) {
	m, dt := buildManager(t)
	require.NoError(t, m.OnCursorUpdate(sporelogic.Point2D{}))

	var vec [12]float64
	for i := range vec {
		vec[i] = 0.1
	}
	require.NoError(t, m.SetOptimizedVector(vec, 0.1))

	require.NoError(t, dt.Set(0.2))

	m.mu.Lock()
	scaled := m.vector[0]
	baseline := m.dtBaseline
	m.mu.Unlock()

	assert.InDelta(t, 0.2, scaled, 1e-9)
	assert.Equal(t, 0.2, baseline)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
