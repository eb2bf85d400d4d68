package model

import (
	"time"

	"github.com/google/uuid"
)

// EventKind classifies best-effort notification events emitted on transitions.
type EventKind string

const (
	EventQuoteAccepted         EventKind = "QUOTE_ACCEPTED"
	EventNewOrder              EventKind = "NEW_ORDER"
	EventFactoryAssignmentNeed EventKind = "FACTORY_ASSIGNMENT_NEEDED"
	EventFactoryAssigned       EventKind = "FACTORY_ASSIGNED"
	EventOrderDelivered        EventKind = "ORDER_DELIVERED"
	EventDeadlineApproaching   EventKind = "DEADLINE_APPROACHING"
	EventDeadlineExceeded      EventKind = "DEADLINE_EXCEEDED"
	EventQuoteExpired          EventKind = "QUOTE_EXPIRED"
	EventProcessStatusChanged  EventKind = "PROCESS_STATUS_CHANGED"
)

// Event is a notification toward the external delivery subsystem.
// Emission is best effort and fully decoupled from the transactional core.
type Event struct {
	ID         uuid.UUID `json:"id"`
	Kind       EventKind `json:"kind"`
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent builds an event with a fresh id and the current time.
func NewEvent(kind EventKind, entityType string, entityID int64, message string) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       kind,
		EntityType: entityType,
		EntityID:   entityID,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	}
}
