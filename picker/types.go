package picker

import (
	"sync"

	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// TimeDirection classifies a neighbor path by the sign of its dt sequence.
type TimeDirection int

const (
	// DirectionUnknown is reported for a path with no steps.
	DirectionUnknown TimeDirection = iota
	DirectionForward
	DirectionBackward
	DirectionMixed
)

// String renders the TimeDirection name.
func (d TimeDirection) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// directionOf classifies a non-empty sequence of signed dt values.
func directionOf(dts []float64) TimeDirection {
	sawPositive, sawNegative := false, false
	for _, dt := range dts {
		switch {
		case dt > 0:
			sawPositive = true
		case dt < 0:
			sawNegative = true
		}
	}
	switch {
	case sawPositive && sawNegative:
		return DirectionMixed
	case sawPositive:
		return DirectionForward
	case sawNegative:
		return DirectionBackward
	default:
		return DirectionUnknown
	}
}

// Distance pairs a spore with its distance to the look point, used for the
// close/far split.
type Distance struct {
	ID   idmanager.SporeID
	Dist float64
}

// NeighborPath is one k-hop (k ∈ {1, 2}) path from the closest spore to a
// neighbor, with its per-step metadata.
type NeighborPath struct {
	TargetID     idmanager.SporeID
	Hops         int
	Dts          []float64 // in traversal order
	Controls     []float64 // in traversal order
	DisplayPath  []string  // visual (display) IDs, in traversal order
	Intermediate *idmanager.SporeID
	Direction    TimeDirection
}

// Report is the structured snapshot a Picker.Update call returns.
type Report struct {
	LookPoint    sporelogic.Point2D
	HasClosest   bool
	ClosestID    idmanager.SporeID
	Close        []Distance
	Far          []Distance
	Neighborhood []NeighborPath
}

// Picker is the neighbor-query subsystem, driven by a look-point the
// caller supplies via Update or ForceUpdate. It never mutates g.
type Picker struct {
	mu sync.Mutex

	g         *graph.Graph
	zoom      ZoomTransform
	threshold float64

	hasLook bool
	rawLook sporelogic.Point2D
	last    Report

	cache *snapshotCache
}

// New constructs a Picker over g with the given zoom transform and close
// threshold.
func New(g *graph.Graph, zoom ZoomTransform, threshold float64) (*Picker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if threshold <= 0 {
		return nil, ErrNonPositiveThreshold
	}
	return &Picker{g: g, zoom: zoom, threshold: threshold}, nil
}
