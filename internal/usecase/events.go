package usecase

import "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"

// Publisher accepts best-effort notification events. Publishing never blocks
// the caller and never fails the business operation that emitted the event.
type Publisher interface {
	Publish(event model.Event)
}

// NopPublisher discards events. Useful default for tests.
type NopPublisher struct{}

func (NopPublisher) Publish(model.Event) {}
