package graph

import (
	"github.com/vgunyavoy/sporegraph/idmanager"
)

// AddEdge inserts link keyed by (link.Parent, link.Child, link.Type).
// Both endpoints must already exist (AddSpore first): the graph cannot
// synthesize a Spore's dynamical state on demand. If an edge with the same
// key already exists, it is replaced and a warning is logged.
func (g *Graph) AddEdge(link *Link) error {
	if link == nil {
		return ErrNilSpore
	}
	if !g.HasSpore(link.Parent) || !g.HasSpore(link.Child) {
		return ErrSporeNotFound
	}
	if link.MaxLength == 0 {
		link.MaxLength = DefaultMaxLength
	}

	key := edgeKey{Parent: link.Parent, Child: link.Child, Type: link.Type}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if _, exists := g.edges[key]; exists {
		g.sink.Warnf("graph: replacing existing edge %d->%d type=%s", link.Parent, link.Child, link.Type)
	}
	g.edges[key] = link

	if g.out[link.Parent] == nil {
		g.out[link.Parent] = make(map[edgeKey]struct{})
	}
	g.out[link.Parent][key] = struct{}{}

	if g.in[link.Child] == nil {
		g.in[link.Child] = make(map[edgeKey]struct{})
	}
	g.in[link.Child][key] = struct{}{}

	return nil
}

// RemoveEdge deletes the edge keyed by (parent, child, linkType).
// Complexity: O(1).
func (g *Graph) RemoveEdge(parent, child idmanager.SporeID, linkType LinkType) error {
	key := edgeKey{Parent: parent, Child: child, Type: linkType}

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if _, exists := g.edges[key]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)
	g.removeFromOut(key)
	g.removeFromIn(key)

	return nil
}

// HasEdge reports whether the exact (parent, child, linkType) key exists.
func (g *Graph) HasEdge(parent, child idmanager.SporeID, linkType LinkType) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	_, ok := g.edges[edgeKey{Parent: parent, Child: child, Type: linkType}]
	return ok
}

// Children returns the distinct set of spore IDs reachable from parent via
// any outgoing link.
func (g *Graph) Children(parent idmanager.SporeID) []idmanager.SporeID {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	seen := make(map[idmanager.SporeID]struct{})
	for key := range g.out[parent] {
		seen[key.Child] = struct{}{}
	}

	out := make([]idmanager.SporeID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

// Parents returns the distinct set of spore IDs with an outgoing link into
// child.
func (g *Graph) Parents(child idmanager.SporeID) []idmanager.SporeID {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	seen := make(map[idmanager.SporeID]struct{})
	for key := range g.in[child] {
		seen[key.Parent] = struct{}{}
	}

	out := make([]idmanager.SporeID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	return out
}

// OutLinks returns every Link with Parent == id, in unspecified order.
func (g *Graph) OutLinks(id idmanager.SporeID) []*Link {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]*Link, 0, len(g.out[id]))
	for key := range g.out[id] {
		out = append(out, g.edges[key])
	}
	return out
}

// InLinks returns every Link with Child == id, in unspecified order.
func (g *Graph) InLinks(id idmanager.SporeID) []*Link {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]*Link, 0, len(g.in[id]))
	for key := range g.in[id] {
		out = append(out, g.edges[key])
	}
	return out
}

// Links returns every link in the graph, in unspecified order.
func (g *Graph) Links() []*Link {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]*Link, 0, len(g.edges))
	for _, l := range g.edges {
		out = append(out, l)
	}
	return out
}

// Resolver maps a foreign spore ID (e.g. in a ghost graph) to the
// corresponding SporeID in this graph, reporting false if unmapped.
type Resolver func(foreign idmanager.SporeID) (idmanager.SporeID, bool)

// CopyStructureFrom copies edge structure from other into g: for each edge
// (p,c,t) in other, resolve p,c via resolver; skip if either is unmapped;
// otherwise add (resolved_p, resolved_c, LinkDefault) to g if not already
// present. Used for generic ghost→real structural promotion; the buffer
// merge uses its own richer materialization that preserves dt/control.
func (g *Graph) CopyStructureFrom(other *Graph, resolve Resolver) (int, error) {
	if other == nil {
		return 0, ErrNilOtherGraph
	}
	if resolve == nil {
		return 0, ErrNilResolver
	}

	added := 0
	for _, l := range other.Links() {
		rp, ok := resolve(l.Parent)
		if !ok {
			continue
		}
		rc, ok := resolve(l.Child)
		if !ok {
			continue
		}
		if g.HasEdge(rp, rc, LinkDefault) {
			continue
		}
		if err := g.AddEdge(&Link{Parent: rp, Child: rc, Type: LinkDefault, MaxLength: DefaultMaxLength}); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}
