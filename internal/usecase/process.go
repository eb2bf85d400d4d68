package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/repository"
)

// ProcessUseCase encapsulates brand creation and brand process transitions.
type ProcessUseCase struct {
	brands    repository.BrandRepository
	processes repository.ProcessRepository
	publisher Publisher
}

// NewProcessUseCase constructs ProcessUseCase.
func NewProcessUseCase(brands repository.BrandRepository, processes repository.ProcessRepository, publisher Publisher) *ProcessUseCase {
	return &ProcessUseCase{brands: brands, processes: processes, publisher: publisher}
}

// CreateBrand registers a brand together with its INIT workflow process.
func (u *ProcessUseCase) CreateBrand(ctx context.Context, name string, actorID int64) (*model.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: brand name must not be empty", domainErrors.ErrValidation)
	}
	return u.brands.Create(ctx, name, actorID)
}

// Brand loads one brand.
func (u *ProcessUseCase) Brand(ctx context.Context, brandID int64) (*model.Brand, error) {
	return u.brands.GetByID(ctx, brandID)
}

// DeleteBrand removes a brand; rejected while its process exists.
func (u *ProcessUseCase) DeleteBrand(ctx context.Context, brandID int64) error {
	return u.brands.Delete(ctx, brandID)
}

// MarkSampleLeft advances the process after a sample was left with the brand.
func (u *ProcessUseCase) MarkSampleLeft(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error) {
	return u.notifyTransition(u.processes.Transition(ctx, brandID, model.ProcessStatusSampleLeft, actorID, nil))
}

// Cancel terminates the process with a free-form reason.
func (u *ProcessUseCase) Cancel(ctx context.Context, brandID int64, reason string, actorID int64) (*model.BrandProcess, error) {
	return u.notifyTransition(u.processes.Transition(ctx, brandID, model.ProcessStatusCancelled, actorID, model.CancelPayload(reason)))
}

// Transition is the generic entry point used by operational tooling.
func (u *ProcessUseCase) Transition(ctx context.Context, brandID int64, to model.ProcessStatus, payload json.RawMessage, actorID int64) (*model.BrandProcess, error) {
	if !model.ValidProcessStatus(to) {
		return nil, fmt.Errorf("%w: unknown process status %q", domainErrors.ErrValidation, to)
	}
	return u.notifyTransition(u.processes.Transition(ctx, brandID, to, actorID, payload))
}

// notifyTransition emits the status-change event for a committed transition.
func (u *ProcessUseCase) notifyTransition(proc *model.BrandProcess, err error) (*model.BrandProcess, error) {
	if err != nil {
		return nil, err
	}
	u.publisher.Publish(model.NewEvent(
		model.EventProcessStatusChanged, "brand", proc.BrandID,
		fmt.Sprintf("brand %d moved to %s", proc.BrandID, proc.Status),
	))
	return proc, nil
}

// CurrentStatus returns the process status without locking.
func (u *ProcessUseCase) CurrentStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error) {
	return u.processes.CurrentStatus(ctx, brandID)
}

// History returns the audit trail, newest first.
func (u *ProcessUseCase) History(ctx context.Context, brandID int64) ([]model.ProcessTransition, error) {
	return u.processes.History(ctx, brandID)
}
