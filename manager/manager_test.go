package manager

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/optimizer"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

func towardGoalStep(state sporelogic.Point2D, control, dt float64) sporelogic.Point2D {
	return sporelogic.Point2D{Theta: state.Theta + control*dt, ThetaDot: state.ThetaDot}
}

func buildManager(t *testing.T) *Manager {
	t.Helper()

	g := graph.New(nil)
	ids := idmanager.New()
	bounds := optimizer.Bounds{ControlMax: 1, DtMin: 0.01, DtMax: 0.2}
	solver, err := optimizer.New(bounds, 300, 1e-4, towardGoalStep, sporelogic.QuadraticCost)
	require.NoError(t, err)

	region := SpawnRegion{ThetaMin: -1, ThetaMax: 1, ThetaDotMin: -1, ThetaDotMax: 1}
	m, err := New(g, solver, ids, towardGoalStep, sporelogic.QuadraticCost, 0.05, 20, region, 0.3, 1.0, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	return m
}

func TestSeedRoot_RegistersInGraph(t *testing.T) {
	m := buildManager(t)
	s, err := m.SeedRoot(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.RoleNormal)
	require.NoError(t, err)

	got, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, s.ID, got.ID)
}

func TestGenerateNewSpore_ExtendsChain(t *testing.T) {
	m := buildManager(t)
	_, err := m.SeedRoot(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.RoleNormal)
	require.NoError(t, err)

	c, err := m.GenerateNewSpore()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Less(t, c.Cost, 1.0)
}

func TestGenerateNewSpore_NoCurrentSporeErrors(t *testing.T) {
	m := buildManager(t)
	_, err := m.GenerateNewSpore()
	assert.ErrorIs(t, err, ErrNoCurrentSpore)
}

func TestGenerateNewSpore_MergesIntoExistingSpore(t *testing.T) {
	m := buildManager(t)
	root, err := m.SeedRoot(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.RoleNormal)
	require.NoError(t, err)

	near, err := sporelogic.NewSpore(999, sporelogic.Point2D{Theta: 0.1, ThetaDot: 0}, root.Goal, root.Weights, sporelogic.QuadraticCost)
	require.NoError(t, err)
	require.NoError(t, m.g.AddSpore(near))

	c, err := m.GenerateNewSpore()
	require.NoError(t, err)
	if c != nil && c.ID == near.ID {
		assert.Equal(t, sporelogic.LifecycleCompleted, root.Lifecycle)
	}
}

func TestGenerateCandidateSpores_RespectsMinRadius(t *testing.T) {
	m := buildManager(t)
	candidates, err := m.GenerateCandidateSpores(sporelogic.Point2D{}, [2]float64{1, 1})
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		assert.Equal(t, sporelogic.RoleCandidate, c.Role)
	}
}

func TestAdjustMinRadius_RegeneratesPool(t *testing.T) {
	m := buildManager(t)
	_, err := m.GenerateCandidateSpores(sporelogic.Point2D{}, [2]float64{1, 1})
	require.NoError(t, err)

	before := len(m.Candidates())
	_, err = m.AdjustMinRadius(3.0)
	require.NoError(t, err)
	after := len(m.Candidates())

	assert.LessOrEqual(t, after, before)
}

func TestActivateRandomCandidate_PromotesIntoGraph(t *testing.T) {
	m := buildManager(t)
	_, err := m.GenerateCandidateSpores(sporelogic.Point2D{}, [2]float64{1, 1})
	require.NoError(t, err)
	require.NotEmpty(t, m.Candidates())

	s, err := m.ActivateRandomCandidate()
	require.NoError(t, err)
	assert.Equal(t, sporelogic.RoleNormal, s.Role)
	assert.True(t, m.g.HasSpore(s.ID))
}

func TestActivateRandomCandidate_EmptyPoolErrors(t *testing.T) {
	m := buildManager(t)
	_, err := m.ActivateRandomCandidate()
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSiblingPreviews_FourEntries(t *testing.T) {
	m := buildManager(t)
	root, err := m.SeedRoot(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.RoleNormal)
	require.NoError(t, err)

	root.OptimalControl = 0.5
	root.OptimalDt = 0.05

	previews := m.SiblingPreviews()
	require.Len(t, previews, 4)
	assert.Equal(t, 1.0, previews[0].Control)
	assert.Equal(t, -1.0, previews[1].Control)
	assert.Equal(t, 0.0, previews[2].Control)
	assert.Equal(t, 0.5, previews[3].Control)
}

func TestEvolveAllCandidatesToCompletion_DrainsPool(t *testing.T) {
	m := buildManager(t)
	_, err := m.SeedRoot(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1}, sporelogic.RoleGoal)
	require.NoError(t, err)
	_, err = m.GenerateCandidateSpores(sporelogic.Point2D{Theta: 1, ThetaDot: 0}, [2]float64{1, 1})
	require.NoError(t, err)
	require.NotEmpty(t, m.Candidates())

	count := 0
	for range m.EvolveAllCandidatesToCompletion() {
		count++
		if count > 10000 {
			t.Fatal("iterator did not terminate")
		}
	}

	assert.Empty(t, m.Candidates())
}
