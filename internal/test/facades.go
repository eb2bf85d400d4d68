package test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// SweepFacadeStub provides controllable behaviour for the expiration sweep.
// Batches are consumed one per poll; expiry failures are keyed by quote id.
type SweepFacadeStub struct {
	sync.Mutex
	Batches    [][]model.Quote
	ExpireErr  map[int64]error
	Expired    []int64
	Failed     []int64
	AlertCalls int
	AlertErr   error
}

// ExpirableQuotes pops the next configured batch.
func (s *SweepFacadeStub) ExpirableQuotes(ctx context.Context, before time.Time, limit int) ([]model.Quote, error) {
	s.Lock()
	defer s.Unlock()
	if len(s.Batches) == 0 {
		return nil, nil
	}
	batch := s.Batches[0]
	s.Batches = s.Batches[1:]
	return batch, nil
}

// ExpireQuote records the expiry or returns the configured failure.
func (s *SweepFacadeStub) ExpireQuote(ctx context.Context, quoteID, actorID int64) error {
	s.Lock()
	defer s.Unlock()
	if err, ok := s.ExpireErr[quoteID]; ok && err != nil {
		s.Failed = append(s.Failed, quoteID)
		return err
	}
	s.Expired = append(s.Expired, quoteID)
	return nil
}

// AlertApproachingDeadlines counts invocations.
func (s *SweepFacadeStub) AlertApproachingDeadlines(ctx context.Context, now time.Time, window time.Duration, limit int) error {
	s.Lock()
	defer s.Unlock()
	s.AlertCalls++
	return s.AlertErr
}

// WorkflowFacadeStub provides per-method hooks for HTTP handler tests.
// Unset hooks return empty values.
type WorkflowFacadeStub struct {
	CreateBrandFn func(context.Context, string, int64) (*model.Brand, error)
	BrandFn       func(context.Context, int64) (*model.Brand, error)
	DeleteBrandFn func(context.Context, int64) error

	ProcessStatusFn     func(context.Context, int64) (model.ProcessStatus, error)
	ProcessHistoryFn    func(context.Context, int64) ([]model.ProcessTransition, error)
	MarkSampleLeftFn    func(context.Context, int64, int64) (*model.BrandProcess, error)
	CancelProcessFn     func(context.Context, int64, string, int64) (*model.BrandProcess, error)
	TransitionProcessFn func(context.Context, int64, model.ProcessStatus, json.RawMessage, int64) (*model.BrandProcess, error)

	CreateQuoteFn   func(context.Context, int64, []model.QuoteItem, string, time.Time, int64) (*model.Quote, error)
	UpdateQuoteFn   func(context.Context, int64, []model.QuoteItem, time.Time, int64) (*model.Quote, error)
	AcceptQuoteFn   func(context.Context, int64, map[int64]time.Time, int64) (*model.Order, error)
	DeclineQuoteFn  func(context.Context, int64, int64) error
	ExpireQuoteFn   func(context.Context, int64, int64) error
	QuoteFn         func(context.Context, int64) (*model.Quote, error)
	QuotesByBrandFn func(context.Context, int64) ([]model.Quote, error)

	OrderFn                 func(context.Context, int64) (*model.Order, error)
	OrdersByBrandFn         func(context.Context, int64) ([]model.Order, error)
	AssignFactoryFn         func(context.Context, int64, int64, *time.Time, int64) (*model.Order, error)
	UpdateOrderStatusFn     func(context.Context, int64, model.OrderStatus, int64) (*model.Order, error)
	UpdateOrderItemStatusFn func(context.Context, int64, int64, model.OrderItemStatus) (*model.OrderItem, error)
}

func (s *WorkflowFacadeStub) CreateBrand(ctx context.Context, name string, actorID int64) (*model.Brand, error) {
	if s.CreateBrandFn != nil {
		return s.CreateBrandFn(ctx, name, actorID)
	}
	return &model.Brand{ID: 1, Name: name}, nil
}

func (s *WorkflowFacadeStub) Brand(ctx context.Context, brandID int64) (*model.Brand, error) {
	if s.BrandFn != nil {
		return s.BrandFn(ctx, brandID)
	}
	return &model.Brand{ID: brandID}, nil
}

func (s *WorkflowFacadeStub) DeleteBrand(ctx context.Context, brandID int64) error {
	if s.DeleteBrandFn != nil {
		return s.DeleteBrandFn(ctx, brandID)
	}
	return nil
}

func (s *WorkflowFacadeStub) ProcessStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error) {
	if s.ProcessStatusFn != nil {
		return s.ProcessStatusFn(ctx, brandID)
	}
	return model.ProcessStatusInit, nil
}

func (s *WorkflowFacadeStub) ProcessHistory(ctx context.Context, brandID int64) ([]model.ProcessTransition, error) {
	if s.ProcessHistoryFn != nil {
		return s.ProcessHistoryFn(ctx, brandID)
	}
	return nil, nil
}

func (s *WorkflowFacadeStub) MarkSampleLeft(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error) {
	if s.MarkSampleLeftFn != nil {
		return s.MarkSampleLeftFn(ctx, brandID, actorID)
	}
	return &model.BrandProcess{BrandID: brandID, Status: model.ProcessStatusSampleLeft}, nil
}

func (s *WorkflowFacadeStub) CancelProcess(ctx context.Context, brandID int64, reason string, actorID int64) (*model.BrandProcess, error) {
	if s.CancelProcessFn != nil {
		return s.CancelProcessFn(ctx, brandID, reason, actorID)
	}
	return &model.BrandProcess{BrandID: brandID, Status: model.ProcessStatusCancelled}, nil
}

func (s *WorkflowFacadeStub) TransitionProcess(ctx context.Context, brandID int64, to model.ProcessStatus, payload json.RawMessage, actorID int64) (*model.BrandProcess, error) {
	if s.TransitionProcessFn != nil {
		return s.TransitionProcessFn(ctx, brandID, to, payload, actorID)
	}
	return &model.BrandProcess{BrandID: brandID, Status: to}, nil
}

func (s *WorkflowFacadeStub) CreateQuote(ctx context.Context, brandID int64, items []model.QuoteItem, currency string, validUntil time.Time, actorID int64) (*model.Quote, error) {
	if s.CreateQuoteFn != nil {
		return s.CreateQuoteFn(ctx, brandID, items, currency, validUntil, actorID)
	}
	return &model.Quote{ID: 1, BrandID: brandID, Status: model.QuoteStatusOfferSent, Items: items}, nil
}

func (s *WorkflowFacadeStub) UpdateQuote(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error) {
	if s.UpdateQuoteFn != nil {
		return s.UpdateQuoteFn(ctx, quoteID, items, validUntil, actorID)
	}
	return &model.Quote{ID: quoteID, Status: model.QuoteStatusOfferSent, Items: items}, nil
}

func (s *WorkflowFacadeStub) AcceptQuote(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error) {
	if s.AcceptQuoteFn != nil {
		return s.AcceptQuoteFn(ctx, quoteID, deadlines, actorID)
	}
	return &model.Order{ID: 1, QuoteID: quoteID, Status: model.OrderStatusPending}, nil
}

func (s *WorkflowFacadeStub) DeclineQuote(ctx context.Context, quoteID, actorID int64) error {
	if s.DeclineQuoteFn != nil {
		return s.DeclineQuoteFn(ctx, quoteID, actorID)
	}
	return nil
}

func (s *WorkflowFacadeStub) ExpireQuote(ctx context.Context, quoteID, actorID int64) error {
	if s.ExpireQuoteFn != nil {
		return s.ExpireQuoteFn(ctx, quoteID, actorID)
	}
	return nil
}

func (s *WorkflowFacadeStub) Quote(ctx context.Context, quoteID int64) (*model.Quote, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(ctx, quoteID)
	}
	return &model.Quote{ID: quoteID}, nil
}

func (s *WorkflowFacadeStub) QuotesByBrand(ctx context.Context, brandID int64) ([]model.Quote, error) {
	if s.QuotesByBrandFn != nil {
		return s.QuotesByBrandFn(ctx, brandID)
	}
	return nil, nil
}

func (s *WorkflowFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *WorkflowFacadeStub) OrdersByBrand(ctx context.Context, brandID int64) ([]model.Order, error) {
	if s.OrdersByBrandFn != nil {
		return s.OrdersByBrandFn(ctx, brandID)
	}
	return nil, nil
}

func (s *WorkflowFacadeStub) AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error) {
	if s.AssignFactoryFn != nil {
		return s.AssignFactoryFn(ctx, orderID, factoryID, deadline, actorID)
	}
	fid := factoryID
	return &model.Order{ID: orderID, FactoryID: &fid, Status: model.OrderStatusInProduction}, nil
}

func (s *WorkflowFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, orderID, status, actorID)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s *WorkflowFacadeStub) UpdateOrderItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error) {
	if s.UpdateOrderItemStatusFn != nil {
		return s.UpdateOrderItemStatusFn(ctx, orderID, itemID, status)
	}
	return &model.OrderItem{ID: itemID, OrderID: orderID, Status: status}, nil
}
