package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// createProcessTx inserts the INIT row for a brand together with the first
// history record (from_status NULL). Shared by process and brand creation.
func (s *Storage) createProcessTx(ctx context.Context, tx pgx.Tx, brandID, actorID int64) (*model.BrandProcess, error) {
	const insertProcess = `INSERT INTO brand_processes (brand_id, status)
                           VALUES ($1, $2)
                           RETURNING id, version, updated_at`
	proc := model.BrandProcess{BrandID: brandID, Status: model.ProcessStatusInit}
	if err := tx.QueryRow(ctx, insertProcess, brandID, model.ProcessStatusInit).Scan(&proc.ID, &proc.Version, &proc.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}
	if err := s.appendHistoryTx(ctx, tx, proc.ID, nil, model.ProcessStatusInit, actorID, nil); err != nil {
		return nil, err
	}
	return &proc, nil
}

// lockProcessTx acquires the exclusive per-brand row lock and re-reads the
// current state under it. Lock waits are bounded by the configured timeout.
func (s *Storage) lockProcessTx(ctx context.Context, tx pgx.Tx, brandID int64) (*model.BrandProcess, error) {
	if err := s.setLockTimeoutTx(ctx, tx); err != nil {
		return nil, err
	}
	const query = `SELECT id, brand_id, status, version, payload, updated_at
                   FROM brand_processes WHERE brand_id=$1 FOR UPDATE`
	var proc model.BrandProcess
	err := tx.QueryRow(ctx, query, brandID).Scan(&proc.ID, &proc.BrandID, &proc.Status, &proc.Version, &proc.Payload, &proc.UpdatedAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	return &proc, nil
}

// applyTransitionTx validates the edge against the transition matrix and, on
// success, writes the new status plus exactly one history record. The caller
// must hold the row lock obtained via lockProcessTx.
func (s *Storage) applyTransitionTx(ctx context.Context, tx pgx.Tx, proc *model.BrandProcess, to model.ProcessStatus, actorID int64, payload json.RawMessage) (*model.BrandProcess, error) {
	if !model.CanTransition(proc.Status, to) {
		return nil, &domainErrors.TransitionError{From: string(proc.Status), To: string(to)}
	}

	const update = `UPDATE brand_processes
                    SET status=$1, payload=$2, version=version+1, updated_at=NOW()
                    WHERE id=$3
                    RETURNING version, updated_at`
	updated := model.BrandProcess{ID: proc.ID, BrandID: proc.BrandID, Status: to, Payload: payload}
	if err := tx.QueryRow(ctx, update, to, payload, proc.ID).Scan(&updated.Version, &updated.UpdatedAt); err != nil {
		return nil, mapPgError(err)
	}

	from := proc.Status
	if err := s.appendHistoryTx(ctx, tx, proc.ID, &from, to, actorID, payload); err != nil {
		return nil, err
	}
	return &updated, nil
}

// transitionTx locks, validates and writes one transition. Every lifecycle
// mutation that advances the brand process funnels through here.
func (s *Storage) transitionTx(ctx context.Context, tx pgx.Tx, brandID int64, to model.ProcessStatus, actorID int64, payload json.RawMessage) (*model.BrandProcess, error) {
	proc, err := s.lockProcessTx(ctx, tx, brandID)
	if err != nil {
		return nil, err
	}
	return s.applyTransitionTx(ctx, tx, proc, to, actorID, payload)
}

// appendHistoryTx writes one immutable audit record. Always invoked within
// the same transaction as the status write it documents.
func (s *Storage) appendHistoryTx(ctx context.Context, tx pgx.Tx, processID int64, from *model.ProcessStatus, to model.ProcessStatus, actorID int64, payload json.RawMessage) error {
	const insert = `INSERT INTO process_history (process_id, from_status, to_status, actor_id, payload)
                    VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.Exec(ctx, insert, processID, from, to, actorID, payload); err != nil {
		return mapPgError(err)
	}
	return nil
}

// appendRevisionTx records a quote-local revision as a self-referential audit
// entry. The process status is unchanged, only version and history advance,
// which keeps the latest history to_status equal to the current status.
func (s *Storage) appendRevisionTx(ctx context.Context, tx pgx.Tx, brandID, actorID int64, payload json.RawMessage) error {
	proc, err := s.lockProcessTx(ctx, tx, brandID)
	if err != nil {
		return err
	}
	const touch = `UPDATE brand_processes SET version=version+1, updated_at=NOW() WHERE id=$1`
	if _, err := tx.Exec(ctx, touch, proc.ID); err != nil {
		return mapPgError(err)
	}
	from := proc.Status
	return s.appendHistoryTx(ctx, tx, proc.ID, &from, proc.Status, actorID, payload)
}

// --- ProcessRepository implementation ---

func (r *processRepository) Create(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error) {
	var proc *model.BrandProcess
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		created, err := r.storage.createProcessTx(ctx, tx, brandID, actorID)
		if err != nil {
			return err
		}
		proc = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proc, nil
}

func (r *processRepository) Transition(ctx context.Context, brandID int64, to model.ProcessStatus, actorID int64, payload json.RawMessage) (*model.BrandProcess, error) {
	var proc *model.BrandProcess
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		updated, err := r.storage.transitionTx(ctx, tx, brandID, to, actorID, payload)
		if err != nil {
			return err
		}
		proc = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proc, nil
}

func (r *processRepository) CurrentStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error) {
	const query = `SELECT status FROM brand_processes WHERE brand_id=$1`
	var status model.ProcessStatus
	if err := r.storage.pool.QueryRow(ctx, query, brandID).Scan(&status); err != nil {
		return "", mapPgError(err)
	}
	return status, nil
}

func (r *processRepository) History(ctx context.Context, brandID int64) ([]model.ProcessTransition, error) {
	const query = `SELECT h.id, h.process_id, h.from_status, h.to_status, h.actor_id, h.payload, h.created_at
                   FROM process_history h
                   JOIN brand_processes p ON p.id = h.process_id
                   WHERE p.brand_id=$1
                   ORDER BY h.created_at DESC, h.id DESC`
	rows, err := r.storage.pool.Query(ctx, query, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ProcessTransition
	for rows.Next() {
		var t model.ProcessTransition
		if err := rows.Scan(&t.ID, &t.ProcessID, &t.FromStatus, &t.ToStatus, &t.ActorID, &t.Payload, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
