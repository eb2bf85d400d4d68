package test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// ProcessRepositoryStub keeps brand processes in memory and mirrors the real
// store's contract: transitions serialize on a lock, validate against the
// matrix and append exactly one history record.
type ProcessRepositoryStub struct {
	mu        sync.Mutex
	processes map[int64]*model.BrandProcess
	history   map[int64][]model.ProcessTransition
	nextID    int64
	Err       error
}

// NewProcessRepositoryStub constructs the stub with initialized maps.
func NewProcessRepositoryStub() *ProcessRepositoryStub {
	return &ProcessRepositoryStub{
		processes: make(map[int64]*model.BrandProcess),
		history:   make(map[int64][]model.ProcessTransition),
		nextID:    1,
	}
}

// Create inserts an INIT process unless one exists for the brand.
func (s *ProcessRepositoryStub) Create(ctx context.Context, brandID, actorID int64) (*model.BrandProcess, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.processes[brandID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	proc := &model.BrandProcess{
		ID:        s.nextID,
		BrandID:   brandID,
		Status:    model.ProcessStatusInit,
		Version:   1,
		UpdatedAt: time.Now(),
	}
	s.nextID++
	s.processes[brandID] = proc
	s.history[brandID] = append(s.history[brandID], model.ProcessTransition{
		ProcessID: proc.ID,
		ToStatus:  model.ProcessStatusInit,
		ActorID:   actorID,
		CreatedAt: proc.UpdatedAt,
	})
	copied := *proc
	return &copied, nil
}

// Transition applies the matrix under the stub's lock.
func (s *ProcessRepositoryStub) Transition(ctx context.Context, brandID int64, to model.ProcessStatus, actorID int64, payload json.RawMessage) (*model.BrandProcess, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	proc, ok := s.processes[brandID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if !model.CanTransition(proc.Status, to) {
		return nil, &domainErrors.TransitionError{From: string(proc.Status), To: string(to)}
	}
	from := proc.Status
	proc.Status = to
	proc.Version++
	proc.Payload = payload
	proc.UpdatedAt = time.Now()
	s.history[brandID] = append(s.history[brandID], model.ProcessTransition{
		ProcessID:  proc.ID,
		FromStatus: &from,
		ToStatus:   to,
		ActorID:    actorID,
		Payload:    payload,
		CreatedAt:  proc.UpdatedAt,
	})
	copied := *proc
	return &copied, nil
}

// CurrentStatus reads without mutation.
func (s *ProcessRepositoryStub) CurrentStatus(ctx context.Context, brandID int64) (model.ProcessStatus, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	proc, ok := s.processes[brandID]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return proc.Status, nil
}

// History returns records newest first.
func (s *ProcessRepositoryStub) History(ctx context.Context, brandID int64) ([]model.ProcessTransition, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.history[brandID]
	reversed := make([]model.ProcessTransition, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		reversed = append(reversed, records[i])
	}
	return reversed, nil
}

// Seed forces a brand's process into the given status, bypassing the matrix.
func (s *ProcessRepositoryStub) Seed(brandID int64, status model.ProcessStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	proc, ok := s.processes[brandID]
	if !ok {
		proc = &model.BrandProcess{ID: s.nextID, BrandID: brandID, Version: 1}
		s.nextID++
		s.processes[brandID] = proc
	}
	proc.Status = status
	s.history[brandID] = append(s.history[brandID], model.ProcessTransition{
		ProcessID: proc.ID,
		ToStatus:  status,
		CreatedAt: time.Now(),
	})
}

// HistoryLen reports the number of audit records for a brand.
func (s *ProcessRepositoryStub) HistoryLen(brandID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history[brandID])
}

// BrandRepositoryStub stores brands in memory and pairs each with an INIT
// process in the linked process stub.
type BrandRepositoryStub struct {
	mu        sync.Mutex
	brands    map[int64]*model.Brand
	names     map[string]int64
	nextID    int64
	Processes *ProcessRepositoryStub
	Err       error
}

// NewBrandRepositoryStub constructs the stub around a process stub.
func NewBrandRepositoryStub(processes *ProcessRepositoryStub) *BrandRepositoryStub {
	return &BrandRepositoryStub{
		brands:    make(map[int64]*model.Brand),
		names:     make(map[string]int64),
		nextID:    1,
		Processes: processes,
	}
}

// Create registers a brand and its INIT process.
func (s *BrandRepositoryStub) Create(ctx context.Context, name string, actorID int64) (*model.Brand, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	if _, exists := s.names[name]; exists {
		s.mu.Unlock()
		return nil, domainErrors.ErrAlreadyExists
	}
	brand := &model.Brand{ID: s.nextID, Name: name, CreatedAt: time.Now()}
	s.nextID++
	s.brands[brand.ID] = brand
	s.names[name] = brand.ID
	s.mu.Unlock()

	if s.Processes != nil {
		if _, err := s.Processes.Create(ctx, brand.ID, actorID); err != nil {
			return nil, err
		}
	}
	copied := *brand
	return &copied, nil
}

// GetByID fetches a brand or returns not found.
func (s *BrandRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Brand, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	brand, ok := s.brands[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *brand
	return &copied, nil
}

// Delete rejects removal while the linked process stub has a process row.
func (s *BrandRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Processes != nil {
		if _, err := s.Processes.CurrentStatus(ctx, id); err == nil {
			return fmt.Errorf("%w: brand %d still has a workflow process", domainErrors.ErrInvalidState, id)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	brand, ok := s.brands[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.names, brand.Name)
	delete(s.brands, id)
	return nil
}

// QuoteRepositoryStub provides per-method hooks over a few canned values.
type QuoteRepositoryStub struct {
	Quotes     []model.Quote
	Expirables []model.Quote
	Err        error

	CreateFn  func(ctx context.Context, quote *model.Quote, actorID int64) (*model.Quote, error)
	UpdateFn  func(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error)
	AcceptFn  func(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error)
	DeclineFn func(ctx context.Context, quoteID, actorID int64) error
	ExpireFn  func(ctx context.Context, quoteID, actorID int64) error

	ExpireCalls []int64
}

func (s *QuoteRepositoryStub) Create(ctx context.Context, quote *model.Quote, actorID int64) (*model.Quote, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, quote, actorID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	created := *quote
	created.ID = 1
	return &created, nil
}

func (s *QuoteRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Quotes {
		if s.Quotes[i].ID == id {
			copied := s.Quotes[i]
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *QuoteRepositoryStub) Update(ctx context.Context, quoteID int64, items []model.QuoteItem, validUntil time.Time, actorID int64) (*model.Quote, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, quoteID, items, validUntil, actorID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Quote{
		ID:         quoteID,
		Status:     model.QuoteStatusOfferSent,
		Items:      items,
		ValidUntil: validUntil,
		TotalPrice: model.QuoteTotal(items),
	}, nil
}

func (s *QuoteRepositoryStub) Accept(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error) {
	if s.AcceptFn != nil {
		return s.AcceptFn(ctx, quoteID, deadlines, actorID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{ID: 1, QuoteID: quoteID, Status: model.OrderStatusPending}, nil
}

func (s *QuoteRepositoryStub) Decline(ctx context.Context, quoteID, actorID int64) error {
	if s.DeclineFn != nil {
		return s.DeclineFn(ctx, quoteID, actorID)
	}
	return s.Err
}

func (s *QuoteRepositoryStub) Expire(ctx context.Context, quoteID, actorID int64) error {
	if s.ExpireFn != nil {
		return s.ExpireFn(ctx, quoteID, actorID)
	}
	if s.Err != nil {
		return s.Err
	}
	s.ExpireCalls = append(s.ExpireCalls, quoteID)
	return nil
}

func (s *QuoteRepositoryStub) ListExpirable(ctx context.Context, before time.Time, limit int) ([]model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if limit > 0 && len(s.Expirables) > limit {
		return s.Expirables[:limit], nil
	}
	return s.Expirables, nil
}

func (s *QuoteRepositoryStub) ListByBrand(ctx context.Context, brandID int64) ([]model.Quote, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Quote
	for _, q := range s.Quotes {
		if q.BrandID == brandID {
			out = append(out, q)
		}
	}
	return out, nil
}

// OrderRepositoryStub provides per-method hooks over a few canned values.
type OrderRepositoryStub struct {
	Orders      []model.Order
	Approaching []model.Order
	Err         error

	AssignFn     func(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error)
	UpdateFn     func(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error)
	UpdateItemFn func(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error)

	UpdateCalls []model.OrderStatus
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			copied := s.Orders[i]
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error) {
	if s.AssignFn != nil {
		return s.AssignFn(ctx, orderID, factoryID, deadline, actorID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	fid := factoryID
	return &model.Order{ID: orderID, FactoryID: &fid, Deadline: deadline, Status: model.OrderStatusInProduction}, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status, actorID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.UpdateCalls = append(s.UpdateCalls, status)
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s *OrderRepositoryStub) UpdateItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error) {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, orderID, itemID, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.OrderItem{ID: itemID, OrderID: orderID, Status: status}, nil
}

func (s *OrderRepositoryStub) ListByBrand(ctx context.Context, brandID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Order
	for _, o := range s.Orders {
		if o.BrandID == brandID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *OrderRepositoryStub) ListApproachingDeadline(ctx context.Context, before time.Time, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if limit > 0 && len(s.Approaching) > limit {
		return s.Approaching[:limit], nil
	}
	return s.Approaching, nil
}
