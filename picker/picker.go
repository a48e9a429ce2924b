package picker

import (
	"sort"
	"strconv"

	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// maxHops bounds the neighborhood walk at 2 hops.
const maxHops = 2

// step records one edge traversed while walking outward from the closest
// spore, in whichever direction (out or in) it was found.
type step struct {
	to      idmanager.SporeID
	dt      float64
	control float64
}

// hopItem is a queue entry for the bounded-depth neighborhood walk,
// carrying the per-edge dt/control trail rather than a single parent
// pointer.
type hopItem struct {
	id    idmanager.SporeID
	depth int
	trail []step
}

// Update corrects rawLookPoint through the Picker's zoom transform, scans
// every registered spore for closeness, and returns the structured Report.
// It never mutates g.
func (p *Picker) Update(rawLookPoint sporelogic.Point2D) (Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hasLook = true
	p.rawLook = rawLookPoint
	return p.recompute(rawLookPoint)
}

// ForceUpdate recomputes the Report against the last look point supplied to
// Update, without requiring a new one. It is a
// no-op returning the last cached Report if Update was never called.
func (p *Picker) ForceUpdate() (Report, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.hasLook {
		return p.last, nil
	}
	return p.recompute(p.rawLook)
}

// SetThreshold updates the close/far split distance.
func (p *Picker) SetThreshold(eps float64) error {
	if eps <= 0 {
		return ErrNonPositiveThreshold
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.threshold = eps
	return nil
}

func (p *Picker) recompute(rawLookPoint sporelogic.Point2D) (Report, error) {
	lookPoint := p.zoom.Correct(rawLookPoint)
	report := Report{LookPoint: lookPoint}

	spores := p.g.Spores()
	if len(spores) == 0 {
		p.last = report
		return report, ErrEmptyGraph
	}

	var closestID idmanager.SporeID
	closestDist := 0.0
	hasClosest := false

	for _, s := range spores {
		d := s.State.Dist(lookPoint)
		if !hasClosest || d < closestDist {
			closestID, closestDist, hasClosest = s.ID, d, true
		}
		if d <= p.threshold {
			report.Close = append(report.Close, Distance{ID: s.ID, Dist: d})
		} else {
			report.Far = append(report.Far, Distance{ID: s.ID, Dist: d})
		}
	}
	sort.Slice(report.Close, func(i, j int) bool { return report.Close[i].Dist < report.Close[j].Dist })
	sort.Slice(report.Far, func(i, j int) bool { return report.Far[i].Dist < report.Far[j].Dist })

	report.HasClosest = hasClosest
	report.ClosestID = closestID
	if hasClosest {
		report.Neighborhood = p.walkNeighborhood(closestID)
	}

	p.last = report
	return report, nil
}

// walkNeighborhood runs a depth-bounded walk outward from root over both
// outgoing and incoming links (the graph is explored in both directions for
// spatial picking; each link's own signed dt/control is reported verbatim,
// since sign already encodes time direction and is a property of the link,
// not of the traversal direction). One NeighborPath is emitted per distinct
// node reached at its first (shallowest) depth.
func (p *Picker) walkNeighborhood(root idmanager.SporeID) []NeighborPath {
	visited := map[idmanager.SporeID]bool{root: true}
	queue := []hopItem{{id: root, depth: 0}}
	var paths []NeighborPath

	extend := func(item hopItem, neighbor idmanager.SporeID, dt, control float64) {
		if visited[neighbor] {
			return
		}
		visited[neighbor] = true

		trail := make([]step, len(item.trail), len(item.trail)+1)
		copy(trail, item.trail)
		trail = append(trail, step{to: neighbor, dt: dt, control: control})

		next := hopItem{id: neighbor, depth: item.depth + 1, trail: trail}
		queue = append(queue, next)
		paths = append(paths, buildNeighborPath(next))
	}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth >= maxHops {
			continue
		}

		for _, l := range p.g.OutLinks(item.id) {
			extend(item, l.Child, l.Dt, l.Control)
		}
		for _, l := range p.g.InLinks(item.id) {
			extend(item, l.Parent, l.Dt, l.Control)
		}
	}

	return paths
}

func buildNeighborPath(item hopItem) NeighborPath {
	dts := make([]float64, len(item.trail))
	controls := make([]float64, len(item.trail))
	display := make([]string, len(item.trail))
	for i, s := range item.trail {
		dts[i] = s.dt
		controls[i] = s.control
		display[i] = strconv.FormatInt(int64(s.to), 10)
	}

	path := NeighborPath{
		TargetID:    item.id,
		Hops:        item.depth,
		Dts:         dts,
		Controls:    controls,
		Direction:   directionOf(dts),
		DisplayPath: display,
	}
	if item.depth == 2 {
		mid := item.trail[0].to
		path.Intermediate = &mid
	}
	return path
}
