package graph

import (
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// AddSpore registers s under its own ID. Idempotent: if a spore with the
// same ID already exists, this is a no-op and the existing pointer is kept.
func (g *Graph) AddSpore(s *sporelogic.Spore) error {
	if s == nil {
		return ErrNilSpore
	}

	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nodes[s.ID]; exists {
		return nil
	}
	g.nodes[s.ID] = s

	return nil
}

// HasSpore reports whether id is registered.
func (g *Graph) HasSpore(id idmanager.SporeID) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// GetSpore returns the spore registered under id, if any.
func (g *Graph) GetSpore(id idmanager.SporeID) (*sporelogic.Spore, bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	s, ok := g.nodes[id]
	return s, ok
}

// Spores returns every registered spore in unspecified order.
func (g *Graph) Spores() []*sporelogic.Spore {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]*sporelogic.Spore, 0, len(g.nodes))
	for _, s := range g.nodes {
		out = append(out, s)
	}
	return out
}

// RemoveSpore deletes id and every edge incident to it; links are
// destroyed with their owning spore.
func (g *Graph) RemoveSpore(id idmanager.SporeID) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrSporeNotFound
	}
	delete(g.nodes, id)

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	for key := range g.out[id] {
		delete(g.edges, key)
		g.removeFromIn(key)
	}
	delete(g.out, id)

	for key := range g.in[id] {
		delete(g.edges, key)
		g.removeFromOut(key)
	}
	delete(g.in, id)

	return nil
}

func (g *Graph) removeFromOut(key edgeKey) {
	if m, ok := g.out[key.Parent]; ok {
		delete(m, key)
	}
}

func (g *Graph) removeFromIn(key edgeKey) {
	if m, ok := g.in[key.Child]; ok {
		delete(m, key)
	}
}

// Clear removes every spore and edge from g.
func (g *Graph) Clear() {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	g.nodes = make(map[idmanager.SporeID]*sporelogic.Spore)
	g.edges = make(map[edgeKey]*Link)
	g.out = make(map[idmanager.SporeID]map[edgeKey]struct{})
	g.in = make(map[idmanager.SporeID]map[edgeKey]struct{})
}

// Stats produces an O(V+E) read-only summary of the graph's size.
func (g *Graph) Stats() Stats {
	g.muNodes.RLock()
	stats := Stats{TotalSpores: len(g.nodes)}
	for _, s := range g.nodes {
		if s.Role == sporelogic.RoleGoal {
			stats.GoalSpores++
		}
	}
	g.muNodes.RUnlock()

	g.muEdges.RLock()
	stats.TotalLinks = len(g.edges)
	g.muEdges.RUnlock()

	return stats
}
