package idmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSporeID_Monotonic(t *testing.T) {
	m := New()
	a := m.NextSporeID()
	b := m.NextSporeID()
	c := m.NextSporeID()
	assert.Equal(t, SporeID(1), a)
	assert.Equal(t, SporeID(2), b)
	assert.Equal(t, SporeID(3), c)
}

func TestCommit_EmptyGroupRejected(t *testing.T) {
	m := New()
	b := m.BeginGroup(ReasonEvolve)
	_, err := m.Commit(b)
	assert.ErrorIs(t, err, ErrEmptyGroup)
	assert.Equal(t, 0, m.HistoryLen())
}

func TestUndoLast_PopsMostRecentGroup(t *testing.T) {
	m := New()

	b1 := m.BeginGroup(ReasonEvolve)
	b1.AddSpore(m.NextSporeID())
	_, err := m.Commit(b1)
	require.NoError(t, err)

	b2 := m.BeginGroup(ReasonTreeCommit)
	b2.AddSpore(m.NextSporeID())
	b2.AddSpore(m.NextSporeID())
	gid2, err := m.Commit(b2)
	require.NoError(t, err)

	require.Equal(t, 2, m.HistoryLen())

	undone, err := m.UndoLast()
	require.NoError(t, err)
	assert.Equal(t, gid2, undone.ID)
	assert.Equal(t, ReasonTreeCommit, undone.Reason)
	assert.Len(t, undone.Spores, 2)
	assert.Equal(t, 1, m.HistoryLen())
}

func TestUndoLast_EmptyHistory(t *testing.T) {
	m := New()
	_, err := m.UndoLast()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestNewFrom_ContinuesAfterLastID(t *testing.T) {
	m := NewFrom(SporeID(41), LinkID(7))
	assert.Equal(t, SporeID(42), m.NextSporeID())
	assert.Equal(t, LinkID(8), m.NextLinkID())
}
