package model

import (
	"encoding/json"
	"time"
)

// SystemActorID marks transitions initiated by the scheduler rather than a user.
const SystemActorID int64 = 0

// ProcessStatus describes where a brand stands in the onboarding-to-delivery flow.
type ProcessStatus string

const (
	ProcessStatusInit          ProcessStatus = "INIT"
	ProcessStatusSampleLeft    ProcessStatus = "SAMPLE_LEFT"
	ProcessStatusOfferSent     ProcessStatus = "OFFER_SENT"
	ProcessStatusOrderPlaced   ProcessStatus = "ORDER_PLACED"
	ProcessStatusSentToFactory ProcessStatus = "SENT_TO_FACTORY"
	ProcessStatusDelivered     ProcessStatus = "DELIVERED"
	ProcessStatusCancelled     ProcessStatus = "CANCELLED"
	ProcessStatusExpired       ProcessStatus = "EXPIRED"
	ProcessStatusCompleted     ProcessStatus = "COMPLETED"
)

// ProcessStatuses lists every known status, useful for validation of client input.
var ProcessStatuses = []ProcessStatus{
	ProcessStatusInit,
	ProcessStatusSampleLeft,
	ProcessStatusOfferSent,
	ProcessStatusOrderPlaced,
	ProcessStatusSentToFactory,
	ProcessStatusDelivered,
	ProcessStatusCancelled,
	ProcessStatusExpired,
	ProcessStatusCompleted,
}

// transitions is the static edge table of the brand process state machine.
// COMPLETED, EXPIRED and CANCELLED are terminal and have no outgoing edges.
var transitions = map[ProcessStatus][]ProcessStatus{
	ProcessStatusInit:          {ProcessStatusSampleLeft, ProcessStatusCancelled},
	ProcessStatusSampleLeft:    {ProcessStatusOfferSent, ProcessStatusCancelled},
	ProcessStatusOfferSent:     {ProcessStatusOrderPlaced, ProcessStatusExpired, ProcessStatusCancelled},
	ProcessStatusOrderPlaced:   {ProcessStatusSentToFactory, ProcessStatusCancelled},
	ProcessStatusSentToFactory: {ProcessStatusCompleted, ProcessStatusCancelled},
}

// CanTransition reports whether the brand process state machine allows
// the edge from one status to another. Any pair not present in the edge
// table, including self-transitions, is rejected.
func CanTransition(from, to ProcessStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidProcessStatus reports whether the value is a known status.
func ValidProcessStatus(s ProcessStatus) bool {
	for _, known := range ProcessStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// BrandProcess is the single current-state row tracking one brand's workflow.
type BrandProcess struct {
	ID        int64
	BrandID   int64
	Status    ProcessStatus
	Version   int64
	Payload   json.RawMessage
	UpdatedAt time.Time
}

// ProcessTransition is one immutable audit record of a status change.
// FromStatus is nil only for the very first record of a process.
type ProcessTransition struct {
	ID         int64
	ProcessID  int64
	FromStatus *ProcessStatus
	ToStatus   ProcessStatus
	ActorID    int64
	Payload    json.RawMessage
	CreatedAt  time.Time
}
