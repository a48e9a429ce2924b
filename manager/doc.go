// Package manager implements the evolution loop that owns the real graph,
// the per-spore optimizer, and the ID manager, and drives generate_new_spore,
// candidate-population sampling, and the sibling-preview computation.
//
// Candidate population uses Poisson-disk sampling (Bridson's algorithm) to
// draw well-spaced spawn points inside a configured rectangle. No widely
// adopted ecosystem package supplies this specific sampling method as an
// importable dependency, so it is hand-rolled here rather than left
// unimplemented or faked behind a stub dependency.
//
// evolve_all_candidates_to_completion is expressed as a Go 1.23
// range-over-func iterator (iter.Seq) rather than a long synchronous loop:
// a driver can range over it and break early to interleave work with a UI
// tick, while the underlying per-step correctness (activate → evolve →
// detect death/completion) is unchanged.
package manager
