// Package picker implements the neighbor-query subsystem:
// zoom-correct a raw look-point into world space, find the nearest real
// spore, and report its k-hop (k ∈ {1, 2}) neighborhood with per-step
// dt/control/time-direction metadata.
//
// The picker never mutates the real graph.Graph it reads from: it is a
// pure observer, and there are no callbacks from the picker into mutating
// code. Its optional snapshot cache watches the debug JSON snapshot file
// graph.WriteSnapshotFile produces via fsnotify rather than polling
// os.Stat in a loop.
package picker
