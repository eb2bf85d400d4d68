package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/usecase"
)

// WorkflowFacade aggregates the use cases behind a single surface consumed
// by the HTTP handlers and the background sweeper.
type WorkflowFacade struct {
	processes *usecase.ProcessUseCase
	quotes    *usecase.QuoteUseCase
	orders    *usecase.OrderUseCase
}

func NewWorkflowFacade(processes *usecase.ProcessUseCase, quotes *usecase.QuoteUseCase, orders *usecase.OrderUseCase) *WorkflowFacade {
	return &WorkflowFacade{processes: processes, quotes: quotes, orders: orders}
}

func (f *WorkflowFacade) CreateBrand(ctx context.Context, name string, actorID int64) (*model.Brand, error) {
	return f.processes.CreateBrand(ctx, name, actorID)
}

func (f *WorkflowFacade) Brand(ctx context.Context, brandID int64) (*model.Brand, error) {
	return f.processes.Brand(ctx, brandID)
}

func (f *WorkflowFacade) DeleteBrand(ctx context.Context, brandID int64) error {
	return f.processes.DeleteBrand(ctx, brandID)
}

func (f *WorkflowFacade) ProcessStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error) {
	return f.processes.CurrentStatus(ctx, brandID)
}

func (f *WorkflowFacade) ProcessHistory(ctx context.Context, brandID int64) ([]model.ProcessTransition, error) {
	return f.processes.History(ctx, brandID)
}

func (f *WorkflowFacade) MarkSampleLeft(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error) {
	return f.processes.MarkSampleLeft(ctx, brandID, actorID)
}

func (f *WorkflowFacade) CancelProcess(ctx context.Context, brandID int64, reason string, actorID int64) (*model.BrandProcess, error) {
	return f.processes.Cancel(ctx, brandID, reason, actorID)
}

func (f *WorkflowFacade) TransitionProcess(ctx context.Context, brandID int64, to model.ProcessStatus, payload json.RawMessage, actorID int64) (*model.BrandProcess, error) {
	return f.processes.Transition(ctx, brandID, to, payload, actorID)
}

func (f *WorkflowFacade) CreateQuote(ctx context.Context, brandID int64, items []model.QuoteItem, currency string, validUntil time.Time, actorID int64) (*model.Quote, error) {
	return f.quotes.Create(ctx, brandID, items, currency, validUntil, actorID)
}

func (f *WorkflowFacade) UpdateQuote(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error) {
	return f.quotes.Update(ctx, quoteID, items, validUntil, actorID)
}

func (f *WorkflowFacade) AcceptQuote(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error) {
	return f.quotes.Accept(ctx, quoteID, deadlines, actorID)
}

func (f *WorkflowFacade) DeclineQuote(ctx context.Context, quoteID, actorID int64) error {
	return f.quotes.Decline(ctx, quoteID, actorID)
}

func (f *WorkflowFacade) ExpireQuote(ctx context.Context, quoteID, actorID int64) error {
	return f.quotes.Expire(ctx, quoteID, actorID)
}

func (f *WorkflowFacade) Quote(ctx context.Context, quoteID int64) (*model.Quote, error) {
	return f.quotes.Get(ctx, quoteID)
}

func (f *WorkflowFacade) QuotesByBrand(ctx context.Context, brandID int64) ([]model.Quote, error) {
	return f.quotes.ListByBrand(ctx, brandID)
}

func (f *WorkflowFacade) ExpirableQuotes(ctx context.Context, before time.Time, limit int) ([]model.Quote, error) {
	return f.quotes.Expirable(ctx, before, limit)
}

func (f *WorkflowFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *WorkflowFacade) OrdersByBrand(ctx context.Context, brandID int64) ([]model.Order, error) {
	return f.orders.ListByBrand(ctx, brandID)
}

func (f *WorkflowFacade) AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error) {
	return f.orders.AssignFactory(ctx, orderID, factoryID, deadline, actorID)
}

func (f *WorkflowFacade) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, status, actorID)
}

func (f *WorkflowFacade) UpdateOrderItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error) {
	return f.orders.UpdateItemStatus(ctx, orderID, itemID, status)
}

func (f *WorkflowFacade) AlertApproachingDeadlines(ctx context.Context, now time.Time, window time.Duration, limit int) error {
	return f.orders.AlertApproachingDeadlines(ctx, now, window, limit)
}
