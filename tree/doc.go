// Package tree builds the fixed-shape 1+4+8 local search structure around
// a root state: four children by the fixed
// forward_max/backward_max/forward_min/backward_min control pattern, two
// reversed-control grandchildren per child, CCW sort-and-pair into four
// cross-parent pairs, and the pair midpoints the pair optimizer maximizes
// the quadrilateral area of.
//
// The sort-and-pair step fails hard (ErrPairingImpossible) if the four
// pairs cannot be arranged to come from two different parents each. That
// arrangement is a correctness property of the planner that must never be
// silently smoothed over: callers are expected to surface it, not to
// retry around it.
package tree
