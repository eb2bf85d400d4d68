package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemRequest is one priced line of a quote payload.
type QuoteItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// QuoteRequest describes quote creation payload.
type QuoteRequest struct {
	BrandID    int64              `json:"brand_id"`
	Currency   string             `json:"currency,omitempty"`
	ValidUntil time.Time          `json:"valid_until"`
	Items      []QuoteItemRequest `json:"items"`
}

// QuoteUpdateRequest replaces the item batch of an editable quote.
type QuoteUpdateRequest struct {
	ValidUntil time.Time          `json:"valid_until"`
	Items      []QuoteItemRequest `json:"items"`
}

// AcceptQuoteRequest carries optional per-product delivery deadlines.
type AcceptQuoteRequest struct {
	Deadlines map[int64]time.Time `json:"deadlines,omitempty"`
}

// QuoteItemResponse describes one stored quote line.
type QuoteItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// QuoteResponse describes a quote with its items.
type QuoteResponse struct {
	ID         int64               `json:"id"`
	BrandID    int64               `json:"brand_id"`
	Status     string              `json:"status"`
	Currency   string              `json:"currency"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	ValidUntil time.Time           `json:"valid_until"`
	Items      []QuoteItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	AcceptedAt *time.Time          `json:"accepted_at,omitempty"`
}
