package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

func mustSpore(t *testing.T, id idmanager.SporeID, theta, thetaDot float64) *sporelogic.Spore {
	t.Helper()
	s, err := sporelogic.NewSpore(id, sporelogic.Point2D{Theta: theta, ThetaDot: thetaDot}, sporelogic.Point2D{}, [2]float64{1, 1}, sporelogic.QuadraticCost)
	require.NoError(t, err)
	return s
}

func TestAddSpore_Idempotent(t *testing.T) {
	g := New(nil)
	s := mustSpore(t, 1, 0.1, 0)

	require.NoError(t, g.AddSpore(s))
	require.NoError(t, g.AddSpore(s))

	assert.Equal(t, 1, g.Stats().TotalSpores)
	assert.True(t, g.HasSpore(1))
}

func TestAddSpore_NilRejected(t *testing.T) {
	g := New(nil)
	assert.ErrorIs(t, g.AddSpore(nil), ErrNilSpore)
}

func TestAddEdge_RequiresBothEndpoints(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.AddSpore(mustSpore(t, 1, 0, 0)))

	err := g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault})
	assert.ErrorIs(t, err, ErrSporeNotFound)
}

func TestAddEdge_ReplacesDuplicateKey(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.AddSpore(mustSpore(t, 1, 0, 0)))
	require.NoError(t, g.AddSpore(mustSpore(t, 2, 0.2, 0)))

	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault, Dt: 0.01}))
	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault, Dt: 0.02}))

	assert.Equal(t, 1, g.Stats().TotalLinks)
	links := g.OutLinks(1)
	require.Len(t, links, 1)
	assert.Equal(t, 0.02, links[0].Dt)
}

func TestChildrenAndParents(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.AddSpore(mustSpore(t, 1, 0, 0)))
	require.NoError(t, g.AddSpore(mustSpore(t, 2, 0.1, 0)))
	require.NoError(t, g.AddSpore(mustSpore(t, 3, 0.2, 0)))

	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault}))
	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 3, Type: LinkGhostMax}))

	children := g.Children(1)
	assert.ElementsMatch(t, []idmanager.SporeID{2, 3}, children)

	parents := g.Parents(2)
	assert.ElementsMatch(t, []idmanager.SporeID{1}, parents)
}

func TestRemoveSpore_CascadesEdges(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.AddSpore(mustSpore(t, 1, 0, 0)))
	require.NoError(t, g.AddSpore(mustSpore(t, 2, 0.1, 0)))
	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault}))

	require.NoError(t, g.RemoveSpore(1))

	assert.False(t, g.HasSpore(1))
	assert.Empty(t, g.OutLinks(1))
	assert.Empty(t, g.InLinks(2))
	assert.Equal(t, 0, g.Stats().TotalLinks)
}

func TestRemoveEdge_NotFound(t *testing.T) {
	g := New(nil)
	err := g.RemoveEdge(1, 2, LinkDefault)
	assert.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestCopyStructureFrom_ResolvesOrSkips(t *testing.T) {
	src := New(nil)
	require.NoError(t, src.AddSpore(mustSpore(t, 10, 0, 0)))
	require.NoError(t, src.AddSpore(mustSpore(t, 20, 0.1, 0)))
	require.NoError(t, src.AddSpore(mustSpore(t, 30, 0.2, 0)))
	require.NoError(t, src.AddEdge(&Link{Parent: 10, Child: 20, Type: LinkGhostMax}))
	require.NoError(t, src.AddEdge(&Link{Parent: 10, Child: 30, Type: LinkGhostMax}))

	dst := New(nil)
	require.NoError(t, dst.AddSpore(mustSpore(t, 1, 0, 0)))
	require.NoError(t, dst.AddSpore(mustSpore(t, 2, 0.1, 0)))

	resolve := func(foreign idmanager.SporeID) (idmanager.SporeID, bool) {
		switch foreign {
		case 10:
			return 1, true
		case 20:
			return 2, true
		default:
			return 0, false
		}
	}

	n, err := dst.CopyStructureFrom(src, resolve)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, dst.HasEdge(1, 2, LinkDefault))
}

func TestCopyStructureFrom_NilArgsRejected(t *testing.T) {
	g := New(nil)
	_, err := g.CopyStructureFrom(nil, func(idmanager.SporeID) (idmanager.SporeID, bool) { return 0, false })
	assert.ErrorIs(t, err, ErrNilOtherGraph)

	other := New(nil)
	_, err = g.CopyStructureFrom(other, nil)
	assert.ErrorIs(t, err, ErrNilResolver)
}

func TestStats_CountsGoalSpores(t *testing.T) {
	g := New(nil)
	goal := mustSpore(t, 1, 0, 0)
	goal.Role = sporelogic.RoleGoal
	require.NoError(t, g.AddSpore(goal))
	require.NoError(t, g.AddSpore(mustSpore(t, 2, 0.1, 0)))

	stats := g.Stats()
	assert.Equal(t, 2, stats.TotalSpores)
	assert.Equal(t, 1, stats.GoalSpores)
}

func TestClear_EmptiesGraph(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.AddSpore(mustSpore(t, 1, 0, 0)))
	require.NoError(t, g.AddSpore(mustSpore(t, 2, 0.1, 0)))
	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault}))

	g.Clear()

	assert.Equal(t, 0, g.Stats().TotalSpores)
	assert.Equal(t, 0, g.Stats().TotalLinks)
}

func TestBuildSnapshot_Schema(t *testing.T) {
	g := New(nil)
	goal := mustSpore(t, 1, 0, 0)
	goal.Role = sporelogic.RoleGoal
	require.NoError(t, g.AddSpore(goal))
	require.NoError(t, g.AddSpore(mustSpore(t, 2, 0.1, -0.2)))
	require.NoError(t, g.AddEdge(&Link{Parent: 1, Child: 2, Type: LinkDefault, Dt: -0.015, Control: 2.5}))

	snap := g.BuildSnapshot(time.Unix(0, 0))

	assert.Equal(t, SnapshotVersion, snap.Metadata.Version)
	assert.Equal(t, 2, snap.Statistics.TotalSpores)
	assert.Equal(t, 1, snap.Statistics.TotalLinks)
	assert.Equal(t, 1, snap.Statistics.GoalSpores)
	require.Len(t, snap.Spores, 2)

	var child SnapshotSpore
	for _, s := range snap.Spores {
		if s.SporeID == "2" {
			child = s
		}
	}
	require.Len(t, child.InLinks, 1)
	assert.Equal(t, "1", child.InLinks[0].FromSporeID)
	assert.Equal(t, -1, child.InLinks[0].DtSign)

	require.Len(t, snap.Links, 1)
	assert.Equal(t, "1", snap.Links[0].FromSporeID)
	assert.Equal(t, "2", snap.Links[0].ToSporeID)
	assert.Equal(t, -1, snap.Links[0].DtSign)
}
