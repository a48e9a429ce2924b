package manager

import (
	"iter"

	"github.com/vgunyavoy/sporegraph/idmanager"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

// EvolutionEvent reports one generate_new_spore call made while draining
// the candidate pool.
type EvolutionEvent struct {
	CandidateID idmanager.SporeID
	ProducedID  idmanager.SporeID
	Merged      bool
	Completed   bool // candidate's trajectory reached a terminal state
	StepCount   int  // 1-based step index within this candidate's run
}

// EvolveAllCandidatesToCompletion drains the candidate pool as a Go 1.23
// range-over-func iterator: each yielded EvolutionEvent corresponds to one
// GenerateNewSpore call. A caller can `for ev := range m.EvolveAll...() {
// ... }` and `break` early to interleave work with a UI tick; stopping
// mid-iteration leaves the graph in a valid, already-committed state,
// since every GenerateNewSpore call is atomic on its own.
func (m *Manager) EvolveAllCandidatesToCompletion() iter.Seq[EvolutionEvent] {
	return func(yield func(EvolutionEvent) bool) {
		for {
			s, err := m.ActivateRandomCandidate()
			if err != nil {
				return // pool drained
			}
			candidateID := s.ID

			for step := 1; step <= m.safetyStepBound; step++ {
				prior, ok := m.Current()
				if !ok {
					break
				}

				produced, err := m.GenerateNewSpore()
				if err != nil || produced == nil {
					break
				}

				// prior is the same *sporelogic.Spore stored in the graph,
				// so GenerateNewSpore's in-place mutation of it is visible
				// here without a re-fetch.
				terminal := prior.Lifecycle != sporelogic.LifecycleAlive
				merged := prior.Lifecycle == sporelogic.LifecycleCompleted

				if !yield(EvolutionEvent{
					CandidateID: candidateID,
					ProducedID:  produced.ID,
					Merged:      merged,
					Completed:   terminal,
					StepCount:   step,
				}) {
					return
				}

				if terminal {
					break
				}
			}
		}
	}
}
