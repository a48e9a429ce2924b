// Package sporelogic implements the 2-D phase-plane state and per-spore
// bookkeeping of the planner: Point2D, the Spore type (state, goal,
// cost, cached optimal step, role/lifecycle tags), and control sampling.
//
// The package deliberately owns only the planning half of a spore: it has
// no notion of rendering, color, or camera position; a visual layer keeps
// its own record keyed by SporeID. Role and Lifecycle are two small tagged
// variants from which color selection becomes a pure function (see
// Color).
package sporelogic
