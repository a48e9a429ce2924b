package idmanager

import "github.com/google/uuid"

// SporeID is the stable integer identity of a Spore, assigned at creation
// and never reused.
type SporeID int64

// LinkID is the stable integer identity of a Link.
type LinkID int64

// GroupID addresses a single undo group. Spore/Link IDs stay small
// integers; a Group, being an external addressable transaction rather than
// a graph node key, is tagged with a uuid so tooling (CLI, snapshot
// consumers) can reference "group X" unambiguously even across a process
// restart where the integer counters reset.
type GroupID uuid.UUID

// String renders the GroupID in canonical uuid form.
func (g GroupID) String() string { return uuid.UUID(g).String() }

// Reason tags why a Group was created, giving each undo-group a
// human-readable provenance label.
type Reason string

const (
	ReasonEvolve            Reason = "evolve"
	ReasonTreeCommit        Reason = "tree-commit"
	ReasonCandidateActivate Reason = "candidate-activate"
)

// Group is one undoable unit of creation: the spores and links it produced,
// in creation order, plus why it was created.
type Group struct {
	ID     GroupID
	Reason Reason
	Spores []SporeID
	Links  []LinkID
}
