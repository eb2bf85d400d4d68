package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/repository"
)

// QuoteUseCase drives the quote lifecycle and the brand process transitions
// coupled to it.
type QuoteUseCase struct {
	quotes    repository.QuoteRepository
	publisher Publisher
}

// NewQuoteUseCase constructs QuoteUseCase.
func NewQuoteUseCase(quotes repository.QuoteRepository, publisher Publisher) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, publisher: publisher}
}

// Create builds an OFFER_SENT quote for a brand and advances the brand
// process. Line totals and the quote total use exact decimal arithmetic.
func (u *QuoteUseCase) Create(ctx context.Context, brandID int64, items []model.QuoteItem, currency string, validUntil time.Time, actorID int64) (*model.Quote, error) {
	if err := ValidateQuoteItems(items); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = "TRY"
	}

	priced := priceItems(items)
	quote := &model.Quote{
		BrandID:    brandID,
		Status:     model.QuoteStatusOfferSent,
		Currency:   currency,
		TotalPrice: model.QuoteTotal(priced),
		ValidUntil: validUntil,
		Items:      priced,
	}
	return u.quotes.Create(ctx, quote, actorID)
}

// Update replaces the quote's items as a batch and re-opens the offer.
func (u *QuoteUseCase) Update(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error) {
	if err := ValidateQuoteItems(items); err != nil {
		return nil, err
	}
	return u.quotes.Update(ctx, quoteID, priceItems(items), validUntil, actorID)
}

// Accept converts an OFFER_SENT quote into an order and places the brand
// process in ORDER_PLACED. Notification events are emitted after commit and
// never influence the outcome.
func (u *QuoteUseCase) Accept(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error) {
	order, err := u.quotes.Accept(ctx, quoteID, deadlines, actorID)
	if err != nil {
		return nil, err
	}

	u.publisher.Publish(model.NewEvent(model.EventQuoteAccepted, "quote", quoteID,
		fmt.Sprintf("quote %d accepted", quoteID)))
	u.publisher.Publish(model.NewEvent(model.EventNewOrder, "order", order.ID,
		fmt.Sprintf("order %d created from quote %d, total %s", order.ID, quoteID, order.TotalPrice)))
	u.publisher.Publish(model.NewEvent(model.EventFactoryAssignmentNeed, "order", order.ID,
		fmt.Sprintf("order %d awaits factory assignment", order.ID)))

	return order, nil
}

// Decline closes an offer without touching the brand process.
func (u *QuoteUseCase) Decline(ctx context.Context, quoteID, actorID int64) error {
	return u.quotes.Decline(ctx, quoteID, actorID)
}

// Expire marks a stale offer EXPIRED. The brand process follows only when it
// is still waiting on this offer.
func (u *QuoteUseCase) Expire(ctx context.Context, quoteID, actorID int64) error {
	if err := u.quotes.Expire(ctx, quoteID, actorID); err != nil {
		return err
	}
	u.publisher.Publish(model.NewEvent(model.EventQuoteExpired, "quote", quoteID,
		fmt.Sprintf("quote %d expired", quoteID)))
	return nil
}

// Get loads one quote with its items.
func (u *QuoteUseCase) Get(ctx context.Context, quoteID int64) (*model.Quote, error) {
	return u.quotes.GetByID(ctx, quoteID)
}

// ListByBrand returns a brand's quotes, newest first.
func (u *QuoteUseCase) ListByBrand(ctx context.Context, brandID int64) ([]model.Quote, error) {
	return u.quotes.ListByBrand(ctx, brandID)
}

// Expirable returns stale OFFER_SENT quotes for the sweep.
func (u *QuoteUseCase) Expirable(ctx context.Context, before time.Time, limit int) ([]model.Quote, error) {
	return u.quotes.ListExpirable(ctx, before, limit)
}

// priceItems recomputes every line total from quantity and unit price so
// clients cannot smuggle in a diverging total.
func priceItems(items []model.QuoteItem) []model.QuoteItem {
	priced := make([]model.QuoteItem, len(items))
	for i, item := range items {
		item.LineTotal = model.LineTotalFor(item.Quantity, item.UnitPrice)
		priced[i] = item
	}
	return priced
}
