package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// Memory keeps sessions in process. State is stored encoded so callers
// never share a report with the store.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	inFlight map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemory returns an in-memory backend. ttl <= 0 uses DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Memory{
		sessions: make(map[string]memoryEntry),
		inFlight: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *Memory) Get(_ context.Context, id string) (*State, bool, error) {
	m.mu.Lock()
	e, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok || m.now().After(e.expires) {
		return nil, false, nil
	}
	s, err := decode(e.data)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (m *Memory) Put(_ context.Context, id string, s *State) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = memoryEntry{data: data, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	delete(m.inFlight, id)
	return nil
}

func (m *Memory) Acquire(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if until, ok := m.inFlight[id]; ok && m.now().Before(until) {
		return false, nil
	}
	m.inFlight[id] = m.now().Add(lockTTL)
	return true, nil
}

func (m *Memory) Release(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, id)
	return nil
}

func (m *Memory) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *Memory) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, e := range m.sessions {
		if now.After(e.expires) {
			delete(m.sessions, id)
		}
	}
	for id, until := range m.inFlight {
		if now.After(until) {
			delete(m.inFlight, id)
		}
	}
}

// Close stops the cleanup loop.
func (m *Memory) Close() error {
	m.stopOnce.Do(func() { close(m.stopCh) })
	return nil
}
