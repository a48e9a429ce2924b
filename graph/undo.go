package graph

import "github.com/vgunyavoy/sporegraph/idmanager"

// ApplyUndo reverses one idmanager.Group: every link the group recorded is
// removed by ID, then every spore it recorded is removed (RemoveSpore also
// cascades any remaining incident edges). Spores/links already absent are
// skipped rather than treated as an error, since a group may be undone
// after a later operation already touched the same IDs (e.g. graph.clear_all).
func (g *Graph) ApplyUndo(group idmanager.Group) {
	linkIDs := make(map[idmanager.LinkID]struct{}, len(group.Links))
	for _, id := range group.Links {
		linkIDs[id] = struct{}{}
	}
	if len(linkIDs) > 0 {
		for _, l := range g.Links() {
			if _, ok := linkIDs[l.ID]; ok {
				_ = g.RemoveEdge(l.Parent, l.Child, l.Type)
			}
		}
	}

	for _, id := range group.Spores {
		_ = g.RemoveSpore(id)
	}
}
