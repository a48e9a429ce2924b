package prediction

import (
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
	"github.com/vgunyavoy/sporegraph/tree"
)

// OnCursorUpdate rebuilds the preview: clear the prior ghost graph, build
// a fresh tree.Tree at cursor using the DT manager's current dt (scaled by
// grandchildFactor for grandchildren), optionally replay a cached
// pair-optimized vector over it, then mirror the tree into ghost spores
// and ghost links.
func (m *Manager) OnCursorUpdate(cursor sporelogic.Point2D) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCursor = cursor
	m.hasCursor = true

	m.ghost.Clear()

	dt := m.dt.CurrentDt()
	tr, err := tree.New(cursor, m.step)
	if err != nil {
		return err
	}

	dtChildren := [4]float64{dt, dt, dt, dt}
	if err := tr.CreateChildren(dtChildren, m.controlMax); err != nil {
		return err
	}

	gcDt := m.grandchildFactor * dt
	dtGC := [8]float64{gcDt, gcDt, gcDt, gcDt, gcDt, gcDt, gcDt, gcDt}
	if err := tr.CreateGrandchildren(dtGC); err != nil {
		return err
	}

	if m.hasVector {
		children, gc := unpackVector(m.vector)
		tr.UpdatePositions(children, gc)
	}

	m.current = tr
	return m.rebuildGhostLinks(tr)
}

// onDtChange implements the dt rescaling rule: scale the cached vector by
// new_dt/baseline, update the baseline, and rebuild at the last cursor. A
// full rebuild replaces every ghost link, which refreshes every link's
// max_length as a side effect.
func (m *Manager) onDtChange(_, newDt float64) {
	m.mu.Lock()
	if !m.hasVector || !m.hasCursor || m.dtBaseline == 0 {
		m.mu.Unlock()
		return
	}

	scale := newDt / m.dtBaseline
	for i := range m.vector {
		m.vector[i] *= scale
	}
	m.dtBaseline = newDt
	cursor := m.lastCursor
	m.mu.Unlock()

	_ = m.OnCursorUpdate(cursor)
}

// rebuildGhostLinks registers one ghost spore per tree node and one ghost
// link per directed tree edge. Must be called with m.mu held.
func (m *Manager) rebuildGhostLinks(tr *tree.Tree) error {
	rootID := m.ids.NextSporeID()
	root, err := sporelogic.NewSpore(rootID, tr.Root, tr.Root, [2]float64{1, 1}, sporelogic.QuadraticCost)
	if err != nil {
		return err
	}
	root.Role = sporelogic.RoleGhost
	if err := m.ghost.AddSpore(root); err != nil {
		return err
	}

	childIDs := make([]idmanager.SporeID, 4)
	for i, c := range tr.Children {
		id := m.ids.NextSporeID()
		s, err := sporelogic.NewSpore(id, c.State, tr.Root, [2]float64{1, 1}, sporelogic.QuadraticCost)
		if err != nil {
			return err
		}
		s.Role = sporelogic.RoleGhost
		if err := m.ghost.AddSpore(s); err != nil {
			return err
		}
		childIDs[i] = id

		if err := m.addGhostLink(rootID, id, c.Control, c.Dt); err != nil {
			return err
		}
	}

	for _, gc := range tr.Grandchildren {
		id := m.ids.NextSporeID()
		s, err := sporelogic.NewSpore(id, gc.State, tr.Root, [2]float64{1, 1}, sporelogic.QuadraticCost)
		if err != nil {
			return err
		}
		s.Role = sporelogic.RoleGhost
		if err := m.ghost.AddSpore(s); err != nil {
			return err
		}

		if err := m.addGhostLink(childIDs[gc.ParentIndex], id, gc.Control, gc.Dt); err != nil {
			return err
		}
	}

	return nil
}

// addGhostLink registers a ghost link between a tree-parent and
// tree-child node. Link type follows the sign of control; arrow direction
// follows the sign of dt: a negative dt reverses which
// end is stored as Parent and which as Child.
func (m *Manager) addGhostLink(treeParent, treeChild idmanager.SporeID, control, dt float64) error {
	linkType := graph.LinkGhostMax
	if control < 0 {
		linkType = graph.LinkGhostMin
	}

	parent, child := treeParent, treeChild
	if dt < 0 {
		parent, child = child, parent
	}

	return m.ghost.AddEdge(&graph.Link{
		ID:        m.ids.NextLinkID(),
		Parent:    parent,
		Child:     child,
		Type:      linkType,
		Dt:        dt,
		Control:   control,
		MaxLength: graph.DefaultMaxLength,
	})
}

// unpackVector splits the cached 12-vector into the 4 child magnitudes and
// 8 grandchild magnitudes tree.Tree.UpdatePositions expects, matching the
// layout pairopt.Optimize produces.
func unpackVector(v [12]float64) (children [4]float64, gc [8]float64) {
	copy(children[:], v[:4])
	copy(gc[:], v[4:12])
	return
}
