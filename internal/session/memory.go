package session

import (
	"context"
	"sync"
)

func init() {
	Register("memory", newMemoryStore)
}

type memoryStore struct {
	mu      sync.RWMutex
	current *Session
}

func newMemoryStore(ProviderConfig) (Store, error) {
	return &memoryStore{}, nil
}

func (m *memoryStore) Get(context.Context) (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil || m.current.ID == "" {
		return Session{}, false, nil
	}
	return *m.current, true, nil
}

func (m *memoryStore) Set(_ context.Context, id string) (Session, error) {
	s := newSession(id)

	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()

	return s, nil
}

func (m *memoryStore) Clear(context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Close() error {
	return nil
}
