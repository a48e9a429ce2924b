package manager

import (
	"github.com/vgunyavoy/sporegraph/graph"
	"github.com/vgunyavoy/sporegraph/sporelogic"
)

const zeroDeathTolerance = 1e-12

// SeedRoot creates the first spore of an evolution chain at initial,
// registers it in the graph as the current spore, and returns it. If role
// is RoleGoal, the spore's Lifecycle is not affected; callers mark a goal
// once per graph, enforced at the materialization layer, not here.
func (m *Manager) SeedRoot(initial, goal sporelogic.Point2D, weights [2]float64, role sporelogic.Role) (*sporelogic.Spore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.ids.NextSporeID()
	s, err := sporelogic.NewSpore(id, initial, goal, weights, m.cost)
	if err != nil {
		return nil, err
	}
	s.Role = role

	if err := m.g.AddSpore(s); err != nil {
		return nil, err
	}
	m.current = id
	m.hasCurrent = true

	return s, nil
}

// GenerateNewSpore runs the central evolution step.
// Returns (nil, nil) if the current spore is not evolvable
// (dead, completed, or is the goal); this is not an error, it signals the
// chain has nothing left to extend.
func (m *Manager) GenerateNewSpore() (*sporelogic.Spore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasCurrent {
		return nil, ErrNoCurrentSpore
	}
	p, ok := m.g.GetSpore(m.current)
	if !ok {
		return nil, ErrNoCurrentSpore
	}
	if !p.Evolvable() {
		return nil, nil
	}

	res, err := m.solver.FindOptimalStep(p)
	if err != nil {
		return nil, err
	}
	p.OptimalControl = res.Control
	p.OptimalDt = res.Dt
	p.CheckDeath(zeroDeathTolerance)
	if p.Lifecycle == sporelogic.LifecycleDead {
		return nil, nil
	}

	newState := m.step(p.State, p.OptimalControl, p.OptimalDt)

	if q := m.findMergeCandidate(p, newState); q != nil {
		p.MarkCompleted()
		if err := m.g.AddEdge(&graph.Link{
			ID:     m.ids.NextLinkID(),
			Parent: p.ID,
			Child:  q.ID,
			Type:   graph.LinkDefault,
		}); err != nil {
			return nil, err
		}
		m.current = q.ID
		return q, nil
	}

	childID := m.ids.NextSporeID()
	c, err := sporelogic.NewSpore(childID, newState, p.Goal, p.Weights, m.cost)
	if err != nil {
		return nil, err
	}
	if err := m.g.AddSpore(c); err != nil {
		return nil, err
	}
	if err := m.g.AddEdge(&graph.Link{
		ID:      m.ids.NextLinkID(),
		Parent:  p.ID,
		Child:   c.ID,
		Type:    graph.LinkDefault,
		Control: p.OptimalControl,
		Dt:      p.OptimalDt,
	}); err != nil {
		return nil, err
	}
	m.current = c.ID

	return c, nil
}

// findMergeCandidate searches the graph for a non-ghost spore other than p
// whose state is within evolutionTol of newState. Dead
// spores are eligible merge targets; ghosts never are.
func (m *Manager) findMergeCandidate(p *sporelogic.Spore, newState sporelogic.Point2D) *sporelogic.Spore {
	for _, q := range m.g.Spores() {
		if q.ID == p.ID || q.Role == sporelogic.RoleGhost {
			continue
		}
		if q.State.Dist(newState) < m.evolutionTol {
			return q
		}
	}
	return nil
}

// GenerateCandidateSpores draws Poisson-disk-sampled positions inside the
// configured spawn region at the current min radius and replaces the
// candidate pool with one RoleCandidate spore per sample. Candidates are
// not registered with the ID manager or the graph until
// ActivateRandomCandidate promotes one.
func (m *Manager) GenerateCandidateSpores(goal sporelogic.Point2D, weights [2]float64) ([]*sporelogic.Spore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastGoal = goal
	m.lastWeights = weights

	points := poissonDiskSample(m.spawnRegion, m.minRadius, m.rng)
	candidates := make([]*sporelogic.Spore, 0, len(points))
	for _, p := range points {
		s, err := sporelogic.NewSpore(0, sporelogic.Point2D{Theta: p.X, ThetaDot: p.Y}, goal, weights, m.cost)
		if err != nil {
			return nil, err
		}
		s.Role = sporelogic.RoleCandidate
		candidates = append(candidates, s)
	}
	m.candidates = candidates

	return candidates, nil
}

// AdjustMinRadius multiplies the Poisson-disk radius by k and regenerates
// the candidate pool against the goal/weights of the last
// GenerateCandidateSpores call.
func (m *Manager) AdjustMinRadius(k float64) ([]*sporelogic.Spore, error) {
	m.mu.Lock()
	newRadius := m.minRadius * k
	goal, weights := m.lastGoal, m.lastWeights
	m.mu.Unlock()

	if newRadius <= 0 {
		return nil, ErrInvalidSpawnRegion
	}

	m.mu.Lock()
	m.minRadius = newRadius
	m.mu.Unlock()

	return m.GenerateCandidateSpores(goal, weights)
}

// ActivateRandomCandidate pops a random candidate from the pool, assigns
// it a stable ID, registers it in the graph as an ordinary spore, and sets
// it as the current evolvable spore.
func (m *Manager) ActivateRandomCandidate() (*sporelogic.Spore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.candidates) == 0 {
		return nil, ErrNoCandidates
	}

	idx := m.rng.Intn(len(m.candidates))
	s := m.candidates[idx]
	m.candidates = append(m.candidates[:idx], m.candidates[idx+1:]...)

	s.ID = m.ids.NextSporeID()
	s.Role = sporelogic.RoleNormal
	if err := m.g.AddSpore(s); err != nil {
		return nil, err
	}
	m.current = s.ID
	m.hasCurrent = true

	return s, nil
}

// SiblingPreviews computes the four ephemeral previews for the current
// evolvable spore with controls {+u_max, -u_max, 0, u*}. They are never
// inserted into the graph. Returns nil if there is no current evolvable
// spore.
func (m *Manager) SiblingPreviews() []SiblingPreview {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasCurrent {
		return nil
	}
	p, ok := m.g.GetSpore(m.current)
	if !ok || !p.Evolvable() {
		return nil
	}

	dt := p.OptimalDt
	if dt == 0 {
		return nil
	}

	controls := [4]float64{m.controlMax, -m.controlMax, 0, p.OptimalControl}
	previews := make([]SiblingPreview, 4)
	for i, u := range controls {
		previews[i] = SiblingPreview{Control: u, State: m.step(p.State, u, dt)}
	}
	return previews
}

// Current returns the current evolvable-chain spore, if any.
func (m *Manager) Current() (*sporelogic.Spore, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hasCurrent {
		return nil, false
	}
	return m.g.GetSpore(m.current)
}

// Candidates returns the current candidate pool in unspecified order.
func (m *Manager) Candidates() []*sporelogic.Spore {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*sporelogic.Spore(nil), m.candidates...)
}
