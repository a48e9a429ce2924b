// Package idmanager allocates the monotonic integer identifiers for
// Spore and Link (IDs are never reused), and maintains the undo stack of
// creation groups behind group undo.
//
// A Group is the unit of undo: the spores and links created by one buffer
// materialization (buffermerge.Materialize) are recorded as a single Group
// so they can be undone atomically. Evolution steps (generate_new_spore) and
// candidate activations are not recorded as Groups; ReasonEvolve and
// ReasonCandidateActivate exist only as Reason values.
package idmanager
