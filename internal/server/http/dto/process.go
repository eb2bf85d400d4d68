package dto

import (
	"encoding/json"
	"time"
)

// TransitionRequest asks for an explicit workflow transition.
type TransitionRequest struct {
	To      string          `json:"to"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// CancelRequest carries the cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// ProcessResponse describes the current workflow state of a brand.
type ProcessResponse struct {
	BrandID   int64     `json:"brand_id"`
	Status    string    `json:"status"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransitionResponse describes one audit trail record.
type TransitionResponse struct {
	FromStatus *string         `json:"from_status"`
	ToStatus   string          `json:"to_status"`
	ActorID    int64           `json:"actor_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
