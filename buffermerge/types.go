package buffermerge

import (
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// nodeKind identifies which tier of the originating tree.Tree a ghostKey
// refers to; used only to order BuildBuffer's root → children →
// grandchildren pass.
type nodeKind int

const (
	nodeRoot nodeKind = iota
	nodeChild
	nodeGrandchild
)

// ghostKey addresses one node of the tree that produced a Buffer: the root,
// one of its 4 children, or one of its (possibly already tree-level
// collapsed) grandchildren.
type ghostKey struct {
	kind  nodeKind
	index int
}

// bufferSpore is one deduplicated node of the intermediate buffer graph.
// dt is the signed dt of the tree edge that produced this node (0 for the
// root, which has no incoming edge).
type bufferSpore struct {
	id  int
	pos sporelogic.Point2D
	dt  float64
}

// bufferLink is one deduplicated directed edge of the buffer graph.
type bufferLink struct {
	parent, child int
	linkType      graph.LinkType
	control       float64
	dt            float64
}

// Buffer is the intermediate, deduplicated representation built from a
// ghost tree.Tree by BuildBuffer. It is consumed exactly once by
// Materialize and then discarded.
type Buffer struct {
	spores []bufferSpore
	links  []bufferLink

	ghostToBuffer  map[ghostKey]int
	bufferToGhosts map[int][]ghostKey

	mergedLinkCount int
	placeEps        float64
}

// SporeCount reports the number of distinct buffer spores after ε-collapse.
func (b *Buffer) SporeCount() int { return len(b.spores) }

// LinkCount reports the number of distinct buffer links after dedup.
func (b *Buffer) LinkCount() int { return len(b.links) }

// GhostCount reports how many ghost nodes were folded into the buffer; a
// tree with all positions pairwise farther apart than eps folds one ghost
// per buffer spore.
func (b *Buffer) GhostCount() int { return len(b.ghostToBuffer) }

// MergedLinkCount reports how many candidate links were skipped because an
// edge with the same (parent, child, type) key already existed.
func (b *Buffer) MergedLinkCount() int { return b.mergedLinkCount }

// GhostsOf returns how many ghost nodes map to the buffer spore at the
// given index in materialization order, for checking the ghost↦buffer /
// buffer↦ghosts consistency invariant.
func (b *Buffer) GhostsOf(bufferID int) int { return len(b.bufferToGhosts[bufferID]) }

// MaterializeResult reports what Materialize produced.
type MaterializeResult struct {
	GroupID     idmanager.GroupID
	RootID      idmanager.SporeID
	SporeIDs    []idmanager.SporeID
	LinkIDs     []idmanager.LinkID
	MergedLinks int
}
