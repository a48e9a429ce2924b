package tree

import (
	"math"
	"sort"

	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// New constructs an empty Tree rooted at root. step is the dynamical
// integration seam (typically pendulum.System.StepFunc()).
func New(root sporelogic.Point2D, step sporelogic.StepFunc) (*Tree, error) {
	if step == nil {
		return nil, ErrNilStepFunc
	}
	return &Tree{Root: root, step: step, PairingCandidateMap: make(map[int][]int)}, nil
}

// CreateChildren builds the 4 first-level nodes. dtChildren holds 4
// unsigned magnitudes; uMax is the pendulum's control bound, so
// u_min = -uMax.
func (tr *Tree) CreateChildren(dtChildren [4]float64, uMax float64) error {
	for i := 0; i < 4; i++ {
		control, sign := childControlSign(i, uMax)
		signedDt := sign * math.Abs(dtChildren[i])
		state := tr.step(tr.Root, control, signedDt)
		tr.Children[i] = Child{Index: i, State: state, Control: control, Dt: signedDt}
	}
	return nil
}

// CreateGrandchildren builds the 8 second-level nodes. dtGC holds 8
// unsigned magnitudes, indexed by the global index k = 2*parentIndex + j.
func (tr *Tree) CreateGrandchildren(dtGC [8]float64) error {
	if tr.Children == [4]Child{} {
		return ErrChildrenNotBuilt
	}

	gcs := make([]Grandchild, 0, 8)
	for p := 0; p < 4; p++ {
		parent := tr.Children[p]
		for j := 0; j < 2; j++ {
			k := 2*p + j
			sign := 1.0
			if j == 1 {
				sign = -1.0
			}
			signedDt := sign * math.Abs(dtGC[k])
			control := -parent.Control
			state := tr.step(parent.State, control, signedDt)
			gcs = append(gcs, Grandchild{
				Index:       k,
				ParentIndex: p,
				State:       state,
				Control:     control,
				Dt:          signedDt,
			})
		}
	}
	tr.Grandchildren = gcs
	return nil
}

// MergeCloseGrandchildren collapses any two grandchildren whose states lie
// within tol of each other: the survivor's state becomes their midpoint,
// |dt| the average of the two magnitudes, and it records MergedFrom = the
// two original global indices. Runs a single pass; only the first close
// pair found per grandchild is merged.
func (tr *Tree) MergeCloseGrandchildren(tol float64) error {
	if tr.Grandchildren == nil {
		return ErrGrandchildrenNotBuilt
	}

	merged := make([]bool, len(tr.Grandchildren))
	out := make([]Grandchild, 0, len(tr.Grandchildren))

	for i := range tr.Grandchildren {
		if merged[i] {
			continue
		}
		gi := tr.Grandchildren[i]
		collapsedWith := -1
		for j := i + 1; j < len(tr.Grandchildren); j++ {
			if merged[j] {
				continue
			}
			if gi.State.Dist(tr.Grandchildren[j].State) < tol {
				collapsedWith = j
				break
			}
		}
		if collapsedWith == -1 {
			out = append(out, gi)
			continue
		}

		gj := tr.Grandchildren[collapsedWith]
		merged[collapsedWith] = true
		out = append(out, Grandchild{
			Index:       gi.Index,
			ParentIndex: gi.ParentIndex,
			State:       gi.State.Midpoint(gj.State),
			Control:     gi.Control,
			Dt:          (math.Abs(gi.Dt) + math.Abs(gj.Dt)) / 2 * sign(gi.Dt),
			MergedFrom:  []int{gi.Index, gj.Index},
		})
	}

	tr.Grandchildren = out
	return nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// SortAndPairGrandchildren sorts grandchildren CCW around the root by
// angular coordinate, rolls so index 0 (and, if needed, index 1) is not
// from parent 0 twice in a row, then asserts the four adjacent pairs each
// come from two distinct parents. Returns ErrPairingImpossible if that one
// rolled arrangement violates the pairing constraint (other rolls are not
// tried); that property must never be silently smoothed over.
func (tr *Tree) SortAndPairGrandchildren() error {
	n := len(tr.Grandchildren)
	if n == 0 {
		return ErrGrandchildrenNotBuilt
	}
	if n%2 != 0 {
		return ErrOddGrandchildCount
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		angA := tr.Grandchildren[order[a]].State.Sub(tr.Root).Atan2()
		angB := tr.Grandchildren[order[b]].State.Sub(tr.Root).Atan2()
		return angA > angB // CCW: reverse order of atan2(dy, dx)
	})

	firstZero := -1
	for i, idx := range order {
		if tr.Grandchildren[idx].ParentIndex == 0 {
			firstZero = i
			break
		}
	}
	if firstZero > 0 {
		order = append(order[firstZero:], order[:firstZero]...)
	}
	if len(order) > 1 && tr.Grandchildren[order[1]].ParentIndex == 0 {
		order = append(order[1:], order[:1]...)
	}

	for k := 0; k+1 < len(order); k += 2 {
		a := tr.Grandchildren[order[k]]
		b := tr.Grandchildren[order[k+1]]
		if a.ParentIndex == b.ParentIndex {
			return ErrPairingImpossible
		}
	}

	tr.PairingCandidateMap = make(map[int][]int, n)
	for i, gi := range tr.Grandchildren {
		for j, gj := range tr.Grandchildren {
			if i != j && gi.ParentIndex != gj.ParentIndex {
				tr.PairingCandidateMap[gi.Index] = append(tr.PairingCandidateMap[gi.Index], gj.Index)
			}
		}
	}

	tr.SortedIndices = order
	return nil
}

// CalculateMeanPoints computes the midpoint of each adjacent pair in
// SortedIndices; these are the quadrilateral vertices the pair optimizer
// maximizes the area of.
func (tr *Tree) CalculateMeanPoints() error {
	if tr.SortedIndices == nil {
		return ErrGrandchildrenNotBuilt
	}

	means := make([]sporelogic.Point2D, 0, len(tr.SortedIndices)/2)
	for k := 0; k+1 < len(tr.SortedIndices); k += 2 {
		a := tr.Grandchildren[tr.SortedIndices[k]].State
		b := tr.Grandchildren[tr.SortedIndices[k+1]].State
		means = append(means, a.Midpoint(b))
	}
	tr.MeanPoints = means
	return nil
}

// UpdatePositions recomputes all child and grandchild states in-place from
// new magnitude vectors, preserving the stored signs and control pattern;
// this is the cheap inner loop the pair optimizer calls on every trial
// vector.
func (tr *Tree) UpdatePositions(dtChildren [4]float64, dtGC [8]float64) {
	for i := 0; i < 4; i++ {
		c := &tr.Children[i]
		s := sign(c.Dt)
		c.Dt = s * math.Abs(dtChildren[i])
		c.State = tr.step(tr.Root, c.Control, c.Dt)
	}
	for i := range tr.Grandchildren {
		gc := &tr.Grandchildren[i]
		parent := tr.Children[gc.ParentIndex]
		s := sign(gc.Dt)
		k := gc.Index
		if k >= 0 && k < len(dtGC) {
			gc.Dt = s * math.Abs(dtGC[k])
		}
		gc.State = tr.step(parent.State, gc.Control, gc.Dt)
	}
}
