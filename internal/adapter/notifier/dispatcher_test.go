package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

type senderStub struct {
	mu      sync.Mutex
	sent    []model.Event
	release chan struct{}
}

func (s *senderStub) Send(ctx context.Context, event model.Event) error {
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, event)
	return nil
}

func (s *senderStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sender := &senderStub{}
	d := NewDispatcher(sender, 4, discardLogger())
	d.Start(context.Background())
	defer d.Stop()

	d.Publish(model.NewEvent(model.EventQuoteAccepted, "quote", 1, "accepted"))
	d.Publish(model.NewEvent(model.EventNewOrder, "order", 2, "created"))

	deadline := time.After(500 * time.Millisecond)
	for sender.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("timeout, delivered %d of 2 events", sender.count())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sender := &senderStub{release: make(chan struct{})}
	d := NewDispatcher(sender, 1, discardLogger())

	// Not started: nothing drains the buffer, so only one event fits.
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Publish(model.NewEvent(model.EventQuoteExpired, "quote", 1, ""))
		d.Publish(model.NewEvent(model.EventQuoteExpired, "quote", 2, ""))
		d.Publish(model.NewEvent(model.EventQuoteExpired, "quote", 3, ""))
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("publish blocked on a full buffer")
	}
	if got := len(d.events); got != 1 {
		t.Fatalf("expected 1 buffered event, got %d", got)
	}
}
