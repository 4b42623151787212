package store

import "sync"

// Memory collects hosts that probed successfully. Duplicates are kept.
type Memory struct {
	mu    sync.Mutex
	alive []string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(host string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alive = append(m.alive, host)
}

// Snapshot returns a copy of the collected hosts in append order.
func (m *Memory) Snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.alive))
	copy(out, m.alive)
	return out
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.alive)
}
