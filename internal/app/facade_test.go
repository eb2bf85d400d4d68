package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	testhelpers "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/test"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/usecase"
)

func newFacade() (*WorkflowFacade, *testhelpers.ProcessRepositoryStub, *testhelpers.QuoteRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.PublisherStub) {
	processRepo := testhelpers.NewProcessRepositoryStub()
	brandRepo := testhelpers.NewBrandRepositoryStub(processRepo)
	publisher := &testhelpers.PublisherStub{}
	processUC := usecase.NewProcessUseCase(brandRepo, processRepo, publisher)

	quoteRepo := &testhelpers.QuoteRepositoryStub{}
	quoteUC := usecase.NewQuoteUseCase(quoteRepo, publisher)

	orderRepo := &testhelpers.OrderRepositoryStub{}
	orderUC := usecase.NewOrderUseCase(orderRepo, publisher)

	facade := NewWorkflowFacade(processUC, quoteUC, orderUC)
	return facade, processRepo, quoteRepo, orderRepo, publisher
}

func TestWorkflowFacadeBrandAndProcess(t *testing.T) {
	facade, _, _, _, _ := newFacade()
	ctx := context.Background()

	brand, err := facade.CreateBrand(ctx, "Lunapark", 5)
	if err != nil {
		t.Fatalf("create brand returned error: %v", err)
	}

	status, err := facade.ProcessStatus(ctx, brand.ID)
	if err != nil {
		t.Fatalf("process status returned error: %v", err)
	}
	if status != model.ProcessStatusInit {
		t.Fatalf("expected INIT after creation, got %s", status)
	}

	proc, err := facade.MarkSampleLeft(ctx, brand.ID, 5)
	if err != nil {
		t.Fatalf("mark sample left returned error: %v", err)
	}
	if proc.Status != model.ProcessStatusSampleLeft {
		t.Fatalf("expected SAMPLE_LEFT, got %s", proc.Status)
	}

	history, err := facade.ProcessHistory(ctx, brand.ID)
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected two history records, got %d", len(history))
	}

	if err := facade.DeleteBrand(ctx, brand.ID); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state while process exists, got %v", err)
	}

	proc, err = facade.CancelProcess(ctx, brand.ID, "brand withdrew", 5)
	if err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if proc.Status != model.ProcessStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", proc.Status)
	}
}

func TestWorkflowFacadeQuotes(t *testing.T) {
	facade, _, quotes, _, publisher := newFacade()
	ctx := context.Background()

	items := []model.QuoteItem{{ProductID: 1, Quantity: 10, UnitPrice: decimal.RequireFromString("12.50")}}
	quote, err := facade.CreateQuote(ctx, 3, items, "TRY", time.Now().Add(24*time.Hour), 5)
	if err != nil {
		t.Fatalf("create quote returned error: %v", err)
	}
	if !quote.TotalPrice.Equal(decimal.RequireFromString("125")) {
		t.Fatalf("unexpected total %s", quote.TotalPrice)
	}

	order, err := facade.AcceptQuote(ctx, quote.ID, nil, 5)
	if err != nil {
		t.Fatalf("accept returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	kinds := publisher.Kinds()
	if len(kinds) == 0 || kinds[0] != model.EventQuoteAccepted {
		t.Fatalf("expected quote accepted event first, got %v", kinds)
	}

	if err := facade.ExpireQuote(ctx, quote.ID, model.SystemActorID); err != nil {
		t.Fatalf("expire returned error: %v", err)
	}
	if len(quotes.ExpireCalls) != 1 {
		t.Fatalf("expected one expire call, got %d", len(quotes.ExpireCalls))
	}

	quotes.Expirables = []model.Quote{{ID: 9}}
	batch, err := facade.ExpirableQuotes(ctx, time.Now(), 10)
	if err != nil || len(batch) != 1 {
		t.Fatalf("unexpected expirable batch %v err=%v", batch, err)
	}
}

func TestWorkflowFacadeOrders(t *testing.T) {
	facade, _, _, orders, publisher := newFacade()
	ctx := context.Background()

	order, err := facade.AssignFactory(ctx, 1, 7, nil, 5)
	if err != nil {
		t.Fatalf("assign factory returned error: %v", err)
	}
	if order.Status != model.OrderStatusInProduction {
		t.Fatalf("expected IN_PRODUCTION, got %s", order.Status)
	}

	if _, err := facade.UpdateOrderStatus(ctx, 1, model.OrderStatusDelivered, 5); err != nil {
		t.Fatalf("update status returned error: %v", err)
	}
	if len(orders.UpdateCalls) != 1 {
		t.Fatalf("expected one update call, got %d", len(orders.UpdateCalls))
	}

	item, err := facade.UpdateOrderItemStatus(ctx, 1, 2, model.OrderItemStatusReady)
	if err != nil {
		t.Fatalf("update item status returned error: %v", err)
	}
	if item.Status != model.OrderItemStatusReady {
		t.Fatalf("expected READY item, got %s", item.Status)
	}

	orders.Approaching = []model.Order{{ID: 1, Deadline: timePtr(time.Now().Add(time.Hour))}}
	if err := facade.AlertApproachingDeadlines(ctx, time.Now(), 72*time.Hour, 10); err != nil {
		t.Fatalf("alert pass returned error: %v", err)
	}
	found := false
	for _, kind := range publisher.Kinds() {
		if kind == model.EventDeadlineApproaching {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a deadline approaching event")
	}
}

func timePtr(t time.Time) *time.Time { return &t }
