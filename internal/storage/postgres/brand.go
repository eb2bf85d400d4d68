package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// --- BrandRepository implementation ---

// Create inserts the brand and its INIT process in one transaction, so a
// brand can never exist without exactly one process row.
func (r *brandRepository) Create(ctx context.Context, name string, actorID int64) (*model.Brand, error) {
	var brand model.Brand
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO brands (name) VALUES ($1) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insert, name).Scan(&brand.ID, &brand.CreatedAt); err != nil {
			return mapPgError(err)
		}
		brand.Name = name
		_, err := r.storage.createProcessTx(ctx, tx, brand.ID, actorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetByID(ctx context.Context, id int64) (*model.Brand, error) {
	const query = `SELECT id, name, created_at FROM brands WHERE id=$1`
	var brand model.Brand
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(&brand.ID, &brand.Name, &brand.CreatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &brand, nil
}

// Delete removes a brand. Rejected while a process row references it, which
// is always the case after creation; removal requires archival elsewhere.
func (r *brandRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const exists = `SELECT EXISTS (SELECT 1 FROM brand_processes WHERE brand_id=$1)`
		var hasProcess bool
		if err := tx.QueryRow(ctx, exists, id).Scan(&hasProcess); err != nil {
			return mapPgError(err)
		}
		if hasProcess {
			return fmt.Errorf("%w: brand %d still has a workflow process", domainErrors.ErrInvalidState, id)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM brands WHERE id=$1`, id)
		if err != nil {
			return mapPgError(err)
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}
