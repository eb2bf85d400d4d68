package repository

import (
	"context"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// QuoteRepository persists quotes and runs the lifecycle mutations that span
// quote, order and brand process rows as single transactions.
type QuoteRepository interface {
	// Create inserts the quote with its items and advances the brand
	// process to OFFER_SENT in one transaction.
	Create(ctx context.Context, quote *model.Quote, actorID int64) (*model.Quote, error)
	// GetByID loads the quote including its items.
	GetByID(ctx context.Context, id int64) (*model.Quote, error)
	// Update replaces all items as a batch, recomputes the total and sets
	// the status back to OFFER_SENT. Legal only while the quote is editable.
	Update(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error)
	// Accept marks the quote ACCEPTED, materializes its order and advances
	// the brand process to ORDER_PLACED, all in one transaction.
	Accept(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error)
	// Decline marks an OFFER_SENT quote DECLINED. The brand process stays at
	// OFFER_SENT until it is cancelled or the offer window expires.
	Decline(ctx context.Context, quoteID int64, actorID int64) error
	// Expire marks an OFFER_SENT quote EXPIRED and advances the brand
	// process to EXPIRED when the process is still OFFER_SENT.
	Expire(ctx context.Context, quoteID int64, actorID int64) error
	// ListExpirable returns OFFER_SENT quotes whose validity ended strictly
	// before the given instant.
	ListExpirable(ctx context.Context, before time.Time, limit int) ([]model.Quote, error)
	ListByBrand(ctx context.Context, brandID int64) ([]model.Quote, error)
}
