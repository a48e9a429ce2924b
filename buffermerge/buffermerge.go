package buffermerge

import (
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
	"github.com/vgunyavoy/sporegraph/tree"
)

// BuildBuffer ε-collapses a ghost tree.Tree into a deduplicated Buffer,
// processing nodes strictly in root → children (0..3) → grandchildren
// (0..len-1) order. eps is the buffer-merge tolerance (config
// Merge.BufferTol); it is distinct from the tree-level grandchild-merge
// tolerance tree.Tree.MergeCloseGrandchildren already applied.
func BuildBuffer(tr *tree.Tree, eps float64) (*Buffer, error) {
	if tr == nil {
		return nil, ErrNilTree
	}

	b := &Buffer{
		ghostToBuffer:  make(map[ghostKey]int),
		bufferToGhosts: make(map[int][]ghostKey),
		placeEps:       eps,
	}

	rootKey := ghostKey{kind: nodeRoot}
	rootBufferID := b.place(rootKey, tr.Root, 0)

	childBufferID := make([]int, 4)
	for i, c := range tr.Children {
		key := ghostKey{kind: nodeChild, index: i}
		childBufferID[i] = b.place(key, c.State, c.Dt)
		b.addLink(rootBufferID, childBufferID[i], c.Control, c.Dt)
	}

	gcBufferID := make([]int, len(tr.Grandchildren))
	for i, gc := range tr.Grandchildren {
		key := ghostKey{kind: nodeGrandchild, index: i}
		gcBufferID[i] = b.place(key, gc.State, gc.Dt)
		b.addLink(childBufferID[gc.ParentIndex], gcBufferID[i], gc.Control, gc.Dt)
	}

	return b, nil
}

// place finds the nearest existing buffer spore to pos within the buffer's
// own stored eps, or creates a new one, and registers the ghost↦buffer
// mapping.
func (b *Buffer) place(key ghostKey, pos sporelogic.Point2D, dt float64) int {
	nearestID := -1
	nearestDist := b.placeEps
	for _, s := range b.spores {
		if d := s.pos.Dist(pos); d < nearestDist {
			nearestID = s.id
			nearestDist = d
		}
	}
	if nearestID != -1 {
		b.mapGhost(key, nearestID)
		return nearestID
	}

	id := len(b.spores)
	b.spores = append(b.spores, bufferSpore{id: id, pos: pos, dt: dt})
	b.mapGhost(key, id)
	return id
}

func (b *Buffer) mapGhost(key ghostKey, bufferID int) {
	b.ghostToBuffer[key] = bufferID
	b.bufferToGhosts[bufferID] = append(b.bufferToGhosts[bufferID], key)
}

// addLink classifies and inserts (or merge-skips) a buffer_max/buffer_min
// link.
func (b *Buffer) addLink(parent, child int, control, dt float64) {
	linkType := graph.LinkBufferMax
	if control < 0 {
		linkType = graph.LinkBufferMin
	}
	b.insertLink(bufferLink{parent: parent, child: child, linkType: linkType, control: control, dt: dt})
}

func (b *Buffer) insertLink(l bufferLink) {
	for _, existing := range b.links {
		if existing.parent == l.parent && existing.child == l.child && existing.linkType == l.linkType {
			b.mergedLinkCount++
			return
		}
	}
	b.links = append(b.links, l)
}

// Materialize instantiates a real spore per buffer spore (marking the
// root's as the goal iff the real graph has none yet) and a real link per
// buffer link (buffer_max/min become real_max/min), and pushes the whole
// batch as a single idmanager.Group. real and ids must be non-nil; b must
// have at least one spore.
func Materialize(b *Buffer, real *graph.Graph, ids *idmanager.Manager, goal sporelogic.Point2D, weights [2]float64, cost sporelogic.CostFunc) (MaterializeResult, error) {
	if real == nil {
		return MaterializeResult{}, ErrNilRealGraph
	}
	if ids == nil {
		return MaterializeResult{}, ErrNilIDManager
	}
	if len(b.spores) == 0 {
		return MaterializeResult{}, ErrEmptyBuffer
	}

	group := ids.BeginGroup(idmanager.ReasonTreeCommit)
	realID := make([]idmanager.SporeID, len(b.spores))
	markGoal := real.Stats().GoalSpores == 0

	for _, bs := range b.spores {
		id := ids.NextSporeID()
		s, err := sporelogic.NewSpore(id, bs.pos, goal, weights, cost)
		if err != nil {
			return MaterializeResult{}, err
		}
		if markGoal && bs.id == 0 {
			s.Role = sporelogic.RoleGoal
			markGoal = false
		}
		if err := real.AddSpore(s); err != nil {
			return MaterializeResult{}, err
		}
		realID[bs.id] = id
		group.AddSpore(id)
	}

	linkIDs := make([]idmanager.LinkID, 0, len(b.links))
	for _, bl := range b.links {
		linkType := bl.linkType
		switch linkType {
		case graph.LinkBufferMax:
			linkType = graph.LinkRealMax
		case graph.LinkBufferMin:
			linkType = graph.LinkRealMin
		}

		id := ids.NextLinkID()
		if err := real.AddEdge(&graph.Link{
			ID:        id,
			Parent:    realID[bl.parent],
			Child:     realID[bl.child],
			Type:      linkType,
			Control:   bl.control,
			Dt:        bl.dt,
			MaxLength: graph.DefaultMaxLength,
		}); err != nil {
			return MaterializeResult{}, err
		}
		linkIDs = append(linkIDs, id)
		group.AddLink(id)
	}

	gid, err := ids.Commit(group)
	if err != nil {
		return MaterializeResult{}, err
	}

	return MaterializeResult{
		GroupID:     gid,
		RootID:      realID[0],
		SporeIDs:    realID,
		LinkIDs:     linkIDs,
		MergedLinks: b.mergedLinkCount,
	}, nil
}
