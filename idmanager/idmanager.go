package idmanager

import (
	"sync"

	"github.com/google/uuid"
)

// Manager allocates SporeID/LinkID values and owns the undo stack of
// Groups. Safe for concurrent use, though a single-threaded cooperative
// driver is the only intended caller.
type Manager struct {
	mu sync.Mutex

	nextSporeID SporeID
	nextLinkID  LinkID
	history     []Group // stack; last element is the most recent group
}

// New returns an empty Manager with counters starting at 1 (0 is reserved
// as "no ID" for callers that use the zero value as a sentinel).
func New() *Manager {
	return &Manager{nextSporeID: 1, nextLinkID: 1}
}

// NewFrom returns a Manager whose counters continue after the highest
// SporeID/LinkID already in use, for resuming against a graph loaded from
// a prior snapshot rather than built fresh.
func NewFrom(lastSporeID SporeID, lastLinkID LinkID) *Manager {
	return &Manager{nextSporeID: lastSporeID + 1, nextLinkID: lastLinkID + 1}
}

// NextSporeID allocates and returns a fresh SporeID. Complexity: O(1).
func (m *Manager) NextSporeID() SporeID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSporeID
	m.nextSporeID++
	return id
}

// NextLinkID allocates and returns a fresh LinkID. Complexity: O(1).
func (m *Manager) NextLinkID() LinkID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextLinkID
	m.nextLinkID++
	return id
}

// GroupBuilder accumulates the spores/links produced by one logical
// operation before it is pushed onto the undo stack.
type GroupBuilder struct {
	reason Reason
	spores []SporeID
	links  []LinkID
}

// BeginGroup starts a new GroupBuilder tagged with reason.
func (m *Manager) BeginGroup(reason Reason) *GroupBuilder {
	return &GroupBuilder{reason: reason}
}

// AddSpore records a spore as created within this group.
func (b *GroupBuilder) AddSpore(id SporeID) { b.spores = append(b.spores, id) }

// AddLink records a link as created within this group.
func (b *GroupBuilder) AddLink(id LinkID) { b.links = append(b.links, id) }

// Len reports how many spores+links the builder has accumulated so far.
func (b *GroupBuilder) Len() int { return len(b.spores) + len(b.links) }

// Commit pushes the accumulated group onto m's undo stack and returns its
// GroupID. Returns ErrEmptyGroup if nothing was recorded; an empty group
// would corrupt the undo accounting.
func (m *Manager) Commit(b *GroupBuilder) (GroupID, error) {
	if b.Len() == 0 {
		return GroupID{}, ErrEmptyGroup
	}
	gid := GroupID(uuid.New())
	grp := Group{
		ID:     gid,
		Reason: b.reason,
		Spores: append([]SporeID(nil), b.spores...),
		Links:  append([]LinkID(nil), b.links...),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append(m.history, grp)

	return gid, nil
}

// UndoLast pops and returns the most recently committed group. Returns
// ErrNoHistory if the stack is empty.
func (m *Manager) UndoLast() (Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return Group{}, ErrNoHistory
	}
	last := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]

	return last, nil
}

// HistoryLen reports the number of groups available to undo.
func (m *Manager) HistoryLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.history)
}

// ClearHistory drops the entire undo history and resets nothing else;
// callers clearing a whole graph still must separately destroy
// spores/links.
func (m *Manager) ClearHistory() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
}
