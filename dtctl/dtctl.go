package dtctl

// CurrentDt returns the manager's current dt value.
func (m *Manager) CurrentDt() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dt
}

// Set updates the current dt and notifies every registered listener with
// (old, new) if the value actually changed. Listeners run synchronously,
// in registration order, after the lock is released, so a listener that
// calls back into the Manager does not deadlock.
func (m *Manager) Set(newDt float64) error {
	if newDt <= 0 {
		return ErrNonPositiveDt
	}

	m.mu.Lock()
	old := m.dt
	if old == newDt {
		m.mu.Unlock()
		return nil
	}
	m.dt = newDt
	m.changeCount++
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	notify(listeners, old, newDt)
	return nil
}

// Reset forces dt back to a known value without requiring it to differ
// from the current one, and always fires listeners; used when a caller
// needs to force a rescale even if the numeric value happens to match.
func (m *Manager) Reset(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveDt
	}

	m.mu.Lock()
	old := m.dt
	m.dt = dt
	m.changeCount++
	listeners := m.snapshotListeners()
	m.mu.Unlock()

	notify(listeners, old, dt)
	return nil
}

func notify(listeners []subscription, old, newDt float64) {
	for _, s := range listeners {
		s.fn(old, newDt)
	}
}

// snapshotListeners must be called with m.mu held.
func (m *Manager) snapshotListeners() []subscription {
	return append([]subscription(nil), m.listeners...)
}

// OnChange registers l to be called on every future Set/Reset that changes
// dt, in registration order. It returns an unsubscribe function.
func (m *Manager) OnChange(l Listener) (unsubscribe func()) {
	m.mu.Lock()
	handle := m.nextHandle
	m.nextHandle++
	m.listeners = append(m.listeners, subscription{handle: handle, fn: l})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.listeners {
			if s.handle == handle {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Stats reports the manager's current dt, how many times it has changed,
// and how many listeners are registered.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{CurrentDt: m.dt, ChangeCount: m.changeCount, ListenerCount: len(m.listeners)}
}
