package graph

import (
	"fmt"
	"sort"
	"time"

	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// SnapshotVersion is embedded in every exported snapshot's metadata.
const SnapshotVersion = "1.0"

// Snapshot is the debug JSON emission schema, produced as an observer on
// the graph rather than wired into the merge pipeline, so the core can be
// unit-tested without touching the filesystem.
type Snapshot struct {
	Metadata   SnapshotMetadata   `json:"metadata"`
	Statistics SnapshotStatistics `json:"statistics"`
	Spores     []SnapshotSpore    `json:"spores"`
	Links      []SnapshotLink     `json:"links"`
}

// SnapshotMetadata records when and by which schema version a Snapshot was built.
type SnapshotMetadata struct {
	ExportTime string `json:"export_time"`
	Version    string `json:"version"`
}

// SnapshotStatistics mirrors graph.Stats in the exported schema's field names.
type SnapshotStatistics struct {
	TotalSpores int `json:"total_spores"`
	TotalLinks  int `json:"total_links"`
	GoalSpores  int `json:"goal_spores"`
}

// SnapshotLinkRef is one end of a spore's in_links/out_links list.
type SnapshotLinkRef struct {
	FromSporeID string  `json:"from_spore_id,omitempty"`
	ToSporeID   string  `json:"to_spore_id,omitempty"`
	Control     float64 `json:"control"`
	Dt          float64 `json:"dt"`
	DtSign      int     `json:"dt_sign"`
}

// SnapshotSpore is one entry in Snapshot.Spores.
type SnapshotSpore struct {
	SporeID  string            `json:"spore_id"`
	Index    int               `json:"index"`
	Position [2]float64        `json:"position"`
	Type     string            `json:"type"` // "goal" | "normal"
	InLinks  []SnapshotLinkRef `json:"in_links"`
	OutLinks []SnapshotLinkRef `json:"out_links"`
}

// SnapshotLink is one entry in Snapshot.Links.
type SnapshotLink struct {
	LinkID      string  `json:"link_id"`
	FromSporeID string  `json:"from_spore_id"`
	ToSporeID   string  `json:"to_spore_id"`
	Control     float64 `json:"control"`
	Dt          float64 `json:"dt"`
	DtSign      int     `json:"dt_sign"`
	RawDt       float64 `json:"raw_dt"`
}

func dtSign(dt float64) int {
	if dt < 0 {
		return -1
	}
	return 1
}

// BuildSnapshot produces a deterministic Snapshot of g: spores sorted by
// SporeID ascending, each spore's in/out link lists sorted by the
// neighbor's SporeID ascending.
func (g *Graph) BuildSnapshot(now time.Time) Snapshot {
	stats := g.Stats()

	g.muNodes.RLock()
	ids := make([]idmanager.SporeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	spores := make([]SnapshotSpore, 0, len(ids))
	for idx, id := range ids {
		s := g.nodes[id]
		typ := "normal"
		if s.Role == sporelogic.RoleGoal {
			typ = "goal"
		}
		spores = append(spores, SnapshotSpore{
			SporeID:  fmt.Sprintf("%d", id),
			Index:    idx,
			Position: [2]float64{s.State.Theta, s.State.ThetaDot},
			Type:     typ,
			InLinks:  g.snapshotLinkRefsIn(id),
			OutLinks: g.snapshotLinkRefsOut(id),
		})
	}
	g.muNodes.RUnlock()

	links := g.Links()
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	snapLinks := make([]SnapshotLink, 0, len(links))
	for _, l := range links {
		snapLinks = append(snapLinks, SnapshotLink{
			LinkID:      fmt.Sprintf("%d", l.ID),
			FromSporeID: fmt.Sprintf("%d", l.Parent),
			ToSporeID:   fmt.Sprintf("%d", l.Child),
			Control:     l.Control,
			Dt:          l.Dt,
			DtSign:      dtSign(l.Dt),
			RawDt:       l.Dt,
		})
	}

	return Snapshot{
		Metadata: SnapshotMetadata{
			ExportTime: now.UTC().Format(time.RFC3339Nano),
			Version:    SnapshotVersion,
		},
		Statistics: SnapshotStatistics{
			TotalSpores: stats.TotalSpores,
			TotalLinks:  stats.TotalLinks,
			GoalSpores:  stats.GoalSpores,
		},
		Spores: spores,
		Links:  snapLinks,
	}
}

func (g *Graph) snapshotLinkRefsIn(id idmanager.SporeID) []SnapshotLinkRef {
	links := g.InLinks(id)
	sort.Slice(links, func(i, j int) bool { return links[i].Parent < links[j].Parent })
	refs := make([]SnapshotLinkRef, 0, len(links))
	for _, l := range links {
		refs = append(refs, SnapshotLinkRef{
			FromSporeID: fmt.Sprintf("%d", l.Parent),
			Control:     l.Control,
			Dt:          l.Dt,
			DtSign:      dtSign(l.Dt),
		})
	}
	return refs
}

func (g *Graph) snapshotLinkRefsOut(id idmanager.SporeID) []SnapshotLinkRef {
	links := g.OutLinks(id)
	sort.Slice(links, func(i, j int) bool { return links[i].Child < links[j].Child })
	refs := make([]SnapshotLinkRef, 0, len(links))
	for _, l := range links {
		refs = append(refs, SnapshotLinkRef{
			ToSporeID: fmt.Sprintf("%d", l.Child),
			Control:   l.Control,
			Dt:        l.Dt,
			DtSign:    dtSign(l.Dt),
		})
	}
	return refs
}
