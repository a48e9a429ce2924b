package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vgunyavoy/sporegraph/sporelogic"
)

func linearStep(state sporelogic.Point2D, control, dt float64) sporelogic.Point2D {
	return sporelogic.Point2D{
		Theta:    state.Theta + control*dt,
		ThetaDot: state.ThetaDot + control*dt*0.3,
	}
}

func buildTree(t *testing.T) *Tree {
	t.Helper()
	tr, err := New(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, linearStep)
	require.NoError(t, err)

	require.NoError(t, tr.CreateChildren([4]float64{0.1, 0.1, 0.1, 0.1}, 1.0))
	require.NoError(t, tr.CreateGrandchildren([8]float64{0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02, 0.02}))
	return tr
}

func TestCreateChildren_FixedControlPattern(t *testing.T) {
	tr := buildTree(t)

	assert.Equal(t, 1.0, tr.Children[0].Control)
	assert.Greater(t, tr.Children[0].Dt, 0.0)
	assert.Equal(t, 1.0, tr.Children[1].Control)
	assert.Less(t, tr.Children[1].Dt, 0.0)
	assert.Equal(t, -1.0, tr.Children[2].Control)
	assert.Greater(t, tr.Children[2].Dt, 0.0)
	assert.Equal(t, -1.0, tr.Children[3].Control)
	assert.Less(t, tr.Children[3].Dt, 0.0)
}

func TestCreateGrandchildren_ReversedControl(t *testing.T) {
	tr := buildTree(t)
	require.Len(t, tr.Grandchildren, 8)

	for p := 0; p < 4; p++ {
		g0 := tr.Grandchildren[2*p]
		g1 := tr.Grandchildren[2*p+1]
		assert.Equal(t, -tr.Children[p].Control, g0.Control)
		assert.Equal(t, -tr.Children[p].Control, g1.Control)
		assert.Greater(t, g0.Dt, 0.0)
		assert.Less(t, g1.Dt, 0.0)
	}
}

// interleavedTree builds a Tree whose 8 grandchildren sit evenly around the
// root at 45-degree increments with parents cycling 0,1,2,3,0,1,2,3; any
// rotation of this pattern has distinct parents in every adjacent pair,
// which is the well-separated geometry the real pendulum's reversal
// principle is expected to produce but a toy linear step function does not
// reliably reconstruct.
func interleavedTree(t *testing.T) *Tree {
	t.Helper()
	tr, err := New(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, linearStep)
	require.NoError(t, err)

	tr.Grandchildren = make([]Grandchild, 8)
	for i := 0; i < 8; i++ {
		angle := float64(i) * (2 * math.Pi / 8)
		tr.Grandchildren[i] = Grandchild{
			Index:       i,
			ParentIndex: i % 4,
			State:       sporelogic.Point2D{Theta: math.Cos(angle), ThetaDot: math.Sin(angle)},
			Dt:          0.02,
		}
	}
	return tr
}

func TestSortAndPairGrandchildren_DistinctParentsPerPair(t *testing.T) {
	tr := interleavedTree(t)
	err := tr.SortAndPairGrandchildren()
	require.NoError(t, err)
	require.Len(t, tr.SortedIndices, 8)

	for k := 0; k+1 < len(tr.SortedIndices); k += 2 {
		a := tr.Grandchildren[tr.SortedIndices[k]]
		b := tr.Grandchildren[tr.SortedIndices[k+1]]
		assert.NotEqual(t, a.ParentIndex, b.ParentIndex)
	}

	for _, gc := range tr.Grandchildren {
		candidates := tr.PairingCandidateMap[gc.Index]
		require.NotEmpty(t, candidates)
		for _, other := range candidates {
			assert.NotEqual(t, gc.ParentIndex, tr.Grandchildren[other].ParentIndex)
		}
	}
}

func TestCalculateMeanPoints_FourVertices(t *testing.T) {
	tr := interleavedTree(t)
	require.NoError(t, tr.SortAndPairGrandchildren())
	require.NoError(t, tr.CalculateMeanPoints())
	assert.Len(t, tr.MeanPoints, 4)
}

func TestMergeCloseGrandchildren_CollapsesAndRecordsProvenance(t *testing.T) {
	tr, err := New(sporelogic.Point2D{Theta: 0, ThetaDot: 0}, linearStep)
	require.NoError(t, err)

	tr.Grandchildren = []Grandchild{
		{Index: 0, ParentIndex: 0, State: sporelogic.Point2D{Theta: 0, ThetaDot: 0}, Dt: 0.02},
		{Index: 1, ParentIndex: 0, State: sporelogic.Point2D{Theta: 0.0001, ThetaDot: 0}, Dt: -0.02},
		{Index: 2, ParentIndex: 1, State: sporelogic.Point2D{Theta: 1, ThetaDot: 1}, Dt: 0.02},
		{Index: 3, ParentIndex: 1, State: sporelogic.Point2D{Theta: -1, ThetaDot: -1}, Dt: -0.02},
	}

	require.NoError(t, tr.MergeCloseGrandchildren(1e-3))
	require.Len(t, tr.Grandchildren, 3)
	assert.Equal(t, []int{0, 1}, tr.Grandchildren[0].MergedFrom)
}

func TestUpdatePositions_PreservesSigns(t *testing.T) {
	tr := buildTree(t)
	originalSign := tr.Children[0].Dt > 0

	tr.UpdatePositions([4]float64{0.2, 0.2, 0.2, 0.2}, [8]float64{0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05, 0.05})

	assert.Equal(t, originalSign, tr.Children[0].Dt > 0)
	assert.InDelta(t, 0.2, tr.Children[0].Dt, 1e-9)
}

func TestQuadrilateralArea_Square(t *testing.T) {
	pts := []sporelogic.Point2D{
		{Theta: 0, ThetaDot: 0},
		{Theta: 1, ThetaDot: 0},
		{Theta: 1, ThetaDot: 1},
		{Theta: 0, ThetaDot: 1},
	}
	assert.InDelta(t, 1.0, QuadrilateralArea(pts), 1e-9)
}
