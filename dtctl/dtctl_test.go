package dtctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNonPositive(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrNonPositiveDt)

	_, err = New(-1)
	assert.ErrorIs(t, err, ErrNonPositiveDt)
}

func TestSet_NotifiesOnChange(t *testing.T) {
	m, err := New(0.02)
	require.NoError(t, err)

	var gotOld, gotNew float64
	calls := 0
	m.OnChange(func(oldDt, newDt float64) {
		calls++
		gotOld, gotNew = oldDt, newDt
	})

	require.NoError(t, m.Set(0.05))
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0.02, gotOld)
	assert.Equal(t, 0.05, gotNew)
	assert.Equal(t, 0.05, m.CurrentDt())
}

func TestSet_NoOpDoesNotNotify(t *testing.T) {
	m, err := New(0.02)
	require.NoError(t, err)

	calls := 0
	m.OnChange(func(float64, float64) { calls++ })

	require.NoError(t, m.Set(0.02))
	assert.Equal(t, 0, calls)
}

func TestReset_AlwaysNotifies(t *testing.T) {
	m, err := New(0.02)
	require.NoError(t, err)

	calls := 0
	m.OnChange(func(float64, float64) { calls++ })

	require.NoError(t, m.Reset(0.02))
	assert.Equal(t, 1, calls)
}

func TestOnChange_UnsubscribeStopsNotifications(t *testing.T) {
	m, err := New(0.02)
	require.NoError(t, err)

	calls := 0
	unsub := m.OnChange(func(float64, float64) { calls++ })
	unsub()

	require.NoError(t, m.Set(0.05))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, m.Stats().ListenerCount)
}

func TestStats_ReportsChangeCount(t *testing.T) {
	m, err := New(0.02)
	require.NoError(t, err)

	require.NoError(t, m.Set(0.05))
	require.NoError(t, m.Set(0.1))

	stats := m.Stats()
	assert.Equal(t, 0.1, stats.CurrentDt)
	assert.Equal(t, 2, stats.ChangeCount)
}
