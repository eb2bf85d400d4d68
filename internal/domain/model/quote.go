package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus describes the quote's own lifecycle, independent of the
// brand process state machine.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "DRAFT"
	QuoteStatusOfferSent QuoteStatus = "OFFER_SENT"
	QuoteStatusAccepted  QuoteStatus = "ACCEPTED"
	QuoteStatusDeclined  QuoteStatus = "DECLINED"
	QuoteStatusExpired   QuoteStatus = "EXPIRED"
)

// Quote is a priced, time-bounded offer of products to a brand.
type Quote struct {
	ID         int64
	BrandID    int64
	Status     QuoteStatus
	Currency   string
	TotalPrice decimal.Decimal
	ValidUntil time.Time
	Items      []QuoteItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
	AcceptedAt *time.Time
}

// QuoteItem is one priced line of a quote. Items are owned by their quote
// and replaced as a whole batch on every revision.
type QuoteItem struct {
	ID        int64
	QuoteID   int64
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Editable reports whether the quote may still be revised.
func (q *Quote) Editable() bool {
	return q.Status == QuoteStatusDraft || q.Status == QuoteStatusOfferSent
}

// LineTotalFor computes quantity times unit price with exact decimal arithmetic.
func LineTotalFor(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// QuoteTotal sums line totals over the item list. An empty list totals zero.
func QuoteTotal(items []QuoteItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return total
}
