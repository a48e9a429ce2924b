package picker

import "github.com/vgunyavoy/sporegraph/sporelogic"

// ZoomTransform is the affine camera transform the Picker corrects raw
// look-point coordinates by before querying the graph. Where it comes from
// (camera/UI state) is external to the core; this struct is only the shape
// the Picker needs to compile against.
type ZoomTransform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// IdentityZoom is the no-op transform, used when a caller has no camera
// state to report yet.
var IdentityZoom = ZoomTransform{Scale: 1}

// Correct maps a raw screen-space point into world-space phase-plane
// coordinates: world = (raw - offset) / scale.
func (z ZoomTransform) Correct(raw sporelogic.Point2D) sporelogic.Point2D {
	scale := z.Scale
	if scale == 0 {
		scale = 1
	}
	return sporelogic.Point2D{
		Theta:    (raw.Theta - z.OffsetX) / scale,
		ThetaDot: (raw.ThetaDot - z.OffsetY) / scale,
	}
}
