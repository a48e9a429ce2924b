package graph

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/logging"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// WriteSnapshotFile serializes g's current Snapshot to path as indented
// JSON, atomically via a temp-file rename so a concurrent reader (e.g. a
// picker's fsnotify watcher) never observes a partially written file.
func (g *Graph) WriteSnapshotFile(path string, now time.Time) error {
	snap := g.BuildSnapshot(now)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSnapshotFile rebuilds a Graph from a file WriteSnapshotFile produced.
// The debug schema carries no per-spore goal/weights, so every
// reconstructed spore shares goal/weights/costFn; the goal is taken as the
// position of whichever snapshot spore has type "goal", or the zero point
// if none is marked. Returns (nil, false, nil) if path does not exist, so
// callers can fall back to a fresh empty Graph without treating a missing
// state file as an error.
func LoadSnapshotFile(path string, weights [2]float64, costFn sporelogic.CostFunc, sink logging.Sink) (*Graph, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, err
	}

	goal := sporelogic.Point2D{}
	for _, s := range snap.Spores {
		if s.Type == "goal" {
			goal = sporelogic.Point2D{Theta: s.Position[0], ThetaDot: s.Position[1]}
			break
		}
	}

	g := New(sink)
	for _, s := range snap.Spores {
		id, err := strconv.ParseInt(s.SporeID, 10, 64)
		if err != nil {
			return nil, false, err
		}
		spore, err := sporelogic.NewSpore(idmanager.SporeID(id), sporelogic.Point2D{Theta: s.Position[0], ThetaDot: s.Position[1]}, goal, weights, costFn)
		if err != nil {
			return nil, false, err
		}
		if s.Type == "goal" {
			spore.Role = sporelogic.RoleGoal
		}
		if err := g.AddSpore(spore); err != nil {
			return nil, false, err
		}
	}

	for _, l := range snap.Links {
		linkID, err := strconv.ParseInt(l.LinkID, 10, 64)
		if err != nil {
			return nil, false, err
		}
		parentID, err := strconv.ParseInt(l.FromSporeID, 10, 64)
		if err != nil {
			return nil, false, err
		}
		childID, err := strconv.ParseInt(l.ToSporeID, 10, 64)
		if err != nil {
			return nil, false, err
		}
		linkType := LinkRealMax
		if l.Control < 0 {
			linkType = LinkRealMin
		}
		if err := g.AddEdge(&Link{
			ID:        idmanager.LinkID(linkID),
			Parent:    idmanager.SporeID(parentID),
			Child:     idmanager.SporeID(childID),
			Type:      linkType,
			Control:   l.Control,
			Dt:        l.Dt,
			MaxLength: DefaultMaxLength,
		}); err != nil {
			return nil, false, err
		}
	}

	return g, true, nil
}

// MaxSporeID returns the largest SporeID registered in g, or 0 if empty.
func (g *Graph) MaxSporeID() idmanager.SporeID {
	var maxID idmanager.SporeID
	for _, s := range g.Spores() {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	return maxID
}

// MaxLinkID returns the largest LinkID registered in g, or 0 if empty.
func (g *Graph) MaxLinkID() idmanager.LinkID {
	var maxID idmanager.LinkID
	for _, l := range g.Links() {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	return maxID
}
