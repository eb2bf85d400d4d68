package test

import (
	"sync"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// PublisherStub records published events for assertions.
type PublisherStub struct {
	mu     sync.Mutex
	events []model.Event
}

// Publish appends the event.
func (s *PublisherStub) Publish(event model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a snapshot of everything published so far.
func (s *PublisherStub) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Kinds returns the event kinds in publish order.
func (s *PublisherStub) Kinds() []model.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	kinds := make([]model.EventKind, 0, len(s.events))
	for _, e := range s.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
