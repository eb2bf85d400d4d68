package repository

import (
	"context"
	"encoding/json"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// ProcessRepository owns the single current-state row per brand process and
// its append-only transition history.
type ProcessRepository interface {
	// Create inserts the INIT row for a brand. Duplicate creation is closed
	// by a unique constraint, not a prior read.
	Create(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error)
	// Transition serializes on an exclusive per-brand row lock, validates
	// the edge against the transition matrix and appends one history record
	// in the same transaction.
	Transition(ctx context.Context, brandID int64, to model.ProcessStatus, actorID int64, payload json.RawMessage) (*model.BrandProcess, error)
	// CurrentStatus is a lock-free snapshot read.
	CurrentStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error)
	// History returns transition records, newest first.
	History(ctx context.Context, brandID int64) ([]model.ProcessTransition, error)
}
