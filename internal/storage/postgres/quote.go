package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// rowQuerier is satisfied by both the pool and an open transaction.
type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// lockQuoteTx acquires the exclusive row lock on one quote and re-reads it.
// Quote mutations are read-modify-write sequences over multiple fields, so
// they use the same locking discipline as the brand process row.
func (s *Storage) lockQuoteTx(ctx context.Context, tx pgx.Tx, quoteID int64) (*model.Quote, error) {
	if err := s.setLockTimeoutTx(ctx, tx); err != nil {
		return nil, err
	}
	const query = `SELECT id, brand_id, status, currency, total_price, valid_until, created_at, updated_at, accepted_at
                   FROM quotes WHERE id=$1 FOR UPDATE`
	var q model.Quote
	err := tx.QueryRow(ctx, query, quoteID).Scan(&q.ID, &q.BrandID, &q.Status, &q.Currency, &q.TotalPrice, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt, &q.AcceptedAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	return &q, nil
}

func (s *Storage) quoteItems(ctx context.Context, q rowQuerier, quoteID int64) ([]model.QuoteItem, error) {
	const query = `SELECT id, quote_id, product_id, quantity, unit_price, line_total
                   FROM quote_items WHERE quote_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, quoteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.QuoteItem
	for rows.Next() {
		var item model.QuoteItem
		if err := rows.Scan(&item.ID, &item.QuoteID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.LineTotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Storage) insertQuoteItemsTx(ctx context.Context, tx pgx.Tx, quoteID int64, items []model.QuoteItem) ([]model.QuoteItem, error) {
	const insert = `INSERT INTO quote_items (quote_id, product_id, quantity, unit_price, line_total)
                    VALUES ($1, $2, $3, $4, $5) RETURNING id`
	inserted := make([]model.QuoteItem, 0, len(items))
	for _, item := range items {
		item.QuoteID = quoteID
		if err := tx.QueryRow(ctx, insert, quoteID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal).Scan(&item.ID); err != nil {
			return nil, mapPgError(err)
		}
		inserted = append(inserted, item)
	}
	return inserted, nil
}

// --- QuoteRepository implementation ---

func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote, actorID int64) (*model.Quote, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO quotes (brand_id, status, currency, total_price, valid_until)
                        VALUES ($1, $2, $3, $4, $5)
                        RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insert, quote.BrandID, quote.Status, quote.Currency, quote.TotalPrice, quote.ValidUntil).Scan(&quote.ID, &quote.CreatedAt, &quote.UpdatedAt); err != nil {
			return mapPgError(err)
		}

		items, err := r.storage.insertQuoteItemsTx(ctx, tx, quote.ID, quote.Items)
		if err != nil {
			return err
		}
		quote.Items = items

		_, err = r.storage.transitionTx(ctx, tx, quote.BrandID, model.ProcessStatusOfferSent, actorID, model.QuotePayload(quote.ID))
		return err
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *quoteRepository) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	const query = `SELECT id, brand_id, status, currency, total_price, valid_until, created_at, updated_at, accepted_at
                   FROM quotes WHERE id=$1`
	var q model.Quote
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&q.ID, &q.BrandID, &q.Status, &q.Currency, &q.TotalPrice, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt, &q.AcceptedAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	items, err := r.storage.quoteItems(ctx, r.storage.pool, id)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return &q, nil
}

func (r *quoteRepository) Update(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error) {
	var quote *model.Quote
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		q, err := r.storage.lockQuoteTx(ctx, tx, quoteID)
		if err != nil {
			return err
		}
		if !q.Editable() {
			return fmt.Errorf("%w: quote %d is %s and can no longer be revised", domainErrors.ErrInvalidState, quoteID, q.Status)
		}

		// Items are owned by the quote and replaced as a whole batch.
		if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id=$1`, quoteID); err != nil {
			return mapPgError(err)
		}
		inserted, err := r.storage.insertQuoteItemsTx(ctx, tx, quoteID, items)
		if err != nil {
			return err
		}

		total := model.QuoteTotal(inserted)
		const update = `UPDATE quotes
                        SET status=$1, total_price=$2, valid_until=$3, updated_at=NOW()
                        WHERE id=$4
                        RETURNING updated_at`
		if err := tx.QueryRow(ctx, update, model.QuoteStatusOfferSent, total, validUntil, quoteID).Scan(&q.UpdatedAt); err != nil {
			return mapPgError(err)
		}

		if err := r.storage.appendRevisionTx(ctx, tx, q.BrandID, actorID, model.RevisionPayload(quoteID)); err != nil {
			return err
		}

		q.Status = model.QuoteStatusOfferSent
		q.TotalPrice = total
		q.ValidUntil = validUntil
		q.Items = inserted
		quote = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (r *quoteRepository) Accept(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		q, err := r.storage.lockQuoteTx(ctx, tx, quoteID)
		if err != nil {
			return err
		}
		if q.Status != model.QuoteStatusOfferSent {
			return fmt.Errorf("%w: quote %d is %s, only an OFFER_SENT quote can be accepted", domainErrors.ErrInvalidState, quoteID, q.Status)
		}
		q.Items, err = r.storage.quoteItems(ctx, tx, quoteID)
		if err != nil {
			return err
		}

		const accept = `UPDATE quotes SET status=$1, accepted_at=NOW(), updated_at=NOW() WHERE id=$2 RETURNING accepted_at`
		if err := tx.QueryRow(ctx, accept, model.QuoteStatusAccepted, quoteID).Scan(&q.AcceptedAt); err != nil {
			return mapPgError(err)
		}

		created := model.OrderFromQuote(q, deadlines)
		const insertOrder = `INSERT INTO orders (quote_id, brand_id, status, total_price)
                             VALUES ($1, $2, $3, $4)
                             RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, created.QuoteID, created.BrandID, created.Status, created.TotalPrice).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return mapPgError(err)
		}
		created.Items, err = r.storage.insertOrderItemsTx(ctx, tx, created.ID, created.Items)
		if err != nil {
			return err
		}

		if _, err := r.storage.transitionTx(ctx, tx, q.BrandID, model.ProcessStatusOrderPlaced, actorID, model.OrderPayload(created.ID, quoteID)); err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *quoteRepository) Decline(ctx context.Context, quoteID int64, actorID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		q, err := r.storage.lockQuoteTx(ctx, tx, quoteID)
		if err != nil {
			return err
		}
		if q.Status != model.QuoteStatusOfferSent {
			return fmt.Errorf("%w: quote %d is %s, only an OFFER_SENT quote can be declined", domainErrors.ErrInvalidState, quoteID, q.Status)
		}
		if _, err := tx.Exec(ctx, `UPDATE quotes SET status=$1, updated_at=NOW() WHERE id=$2`, model.QuoteStatusDeclined, quoteID); err != nil {
			return mapPgError(err)
		}
		return nil
	})
}

func (r *quoteRepository) Expire(ctx context.Context, quoteID int64, actorID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		q, err := r.storage.lockQuoteTx(ctx, tx, quoteID)
		if err != nil {
			return err
		}
		if q.Status != model.QuoteStatusOfferSent {
			return fmt.Errorf("%w: quote %d is %s, only an OFFER_SENT quote can expire", domainErrors.ErrInvalidState, quoteID, q.Status)
		}
		if _, err := tx.Exec(ctx, `UPDATE quotes SET status=$1, updated_at=NOW() WHERE id=$2`, model.QuoteStatusExpired, quoteID); err != nil {
			return mapPgError(err)
		}

		// Expiry is advisory for the brand process: only an OFFER_SENT
		// process is moved along, anything else is left untouched.
		proc, err := r.storage.lockProcessTx(ctx, tx, q.BrandID)
		if err != nil {
			return err
		}
		if proc.Status != model.ProcessStatusOfferSent {
			return nil
		}
		_, err = r.storage.applyTransitionTx(ctx, tx, proc, model.ProcessStatusExpired, actorID, model.QuotePayload(quoteID))
		return err
	})
}

func (r *quoteRepository) ListExpirable(ctx context.Context, before time.Time, limit int) ([]model.Quote, error) {
	const query = `SELECT id, brand_id, status, currency, total_price, valid_until, created_at, updated_at, accepted_at
                   FROM quotes
                   WHERE status=$1 AND valid_until < $2
                   ORDER BY valid_until
                   LIMIT $3`
	return r.listQuotes(ctx, query, model.QuoteStatusOfferSent, before, limit)
}

func (r *quoteRepository) ListByBrand(ctx context.Context, brandID int64) ([]model.Quote, error) {
	const query = `SELECT id, brand_id, status, currency, total_price, valid_until, created_at, updated_at, accepted_at
                   FROM quotes WHERE brand_id=$1 ORDER BY created_at DESC`
	return r.listQuotes(ctx, query, brandID)
}

func (r *quoteRepository) listQuotes(ctx context.Context, query string, args ...any) ([]model.Quote, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(&q.ID, &q.BrandID, &q.Status, &q.Currency, &q.TotalPrice, &q.ValidUntil, &q.CreatedAt, &q.UpdatedAt, &q.AcceptedAt); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
