package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps events per organization.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.Organization] = append(s.events[event.Organization], event)
	return nil
}

func (s *InMemoryStore) ListByOrganization(_ context.Context, org string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[org]...), nil
}
