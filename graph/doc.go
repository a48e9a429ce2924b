// Package graph implements the typed directed multigraph at the heart of
// the planner: Spores as nodes, Links as typed directed edges keyed by
// (parent, child, link_type). Two independent instances exist at runtime,
// the real graph owned by the spore manager and the ephemeral ghost graph
// owned by the prediction manager, both built from this same type.
//
// Separate RWMutex locks guard the node catalog and the edge/adjacency
// catalog, nested-map adjacency gives O(1) edge existence/insert/delete,
// and a deterministic JSON snapshot supports debugging. Nodes are
// *sporelogic.Spore values that must be fully constructed before
// insertion; the Graph does not synthesize a Spore's dynamical state on
// demand, so AddEdge here requires both endpoints to already exist.
package graph
