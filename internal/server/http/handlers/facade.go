package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// BrandFacade describes brand operations required by handlers.
type BrandFacade interface {
	CreateBrand(ctx context.Context, name string, actorID int64) (*model.Brand, error)
	Brand(ctx context.Context, brandID int64) (*model.Brand, error)
	DeleteBrand(ctx context.Context, brandID int64) error
}

// ProcessFacade exposes the workflow state machine of a brand.
type ProcessFacade interface {
	ProcessStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error)
	ProcessHistory(ctx context.Context, brandID int64) ([]model.ProcessTransition, error)
	MarkSampleLeft(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error)
	CancelProcess(ctx context.Context, brandID int64, reason string, actorID int64) (*model.BrandProcess, error)
	TransitionProcess(ctx context.Context, brandID int64, to model.ProcessStatus, payload json.RawMessage, actorID int64) (*model.BrandProcess, error)
}

// QuoteFacade encapsulates the quote lifecycle exposed via HTTP.
type QuoteFacade interface {
	CreateQuote(ctx context.Context, brandID int64, items []model.QuoteItem, currency string, validUntil time.Time, actorID int64) (*model.Quote, error)
	UpdateQuote(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error)
	AcceptQuote(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error)
	DeclineQuote(ctx context.Context, quoteID, actorID int64) error
	ExpireQuote(ctx context.Context, quoteID, actorID int64) error
	Quote(ctx context.Context, quoteID int64) (*model.Quote, error)
	QuotesByBrand(ctx context.Context, brandID int64) ([]model.Quote, error)
}

// OrderFacade encapsulates the order lifecycle exposed via HTTP.
type OrderFacade interface {
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	OrdersByBrand(ctx context.Context, brandID int64) ([]model.Order, error)
	AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error)
	UpdateOrderItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error)
}

// WorkflowFacade aggregates the full set of operations used across handlers.
type WorkflowFacade interface {
	BrandFacade
	ProcessFacade
	QuoteFacade
	OrderFacade
}
