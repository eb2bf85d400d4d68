package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	testhelpers "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/test"
)

func TestAssignFactoryPublishesEvent(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, publisher)

	order, err := uc.AssignFactory(context.Background(), 1, 7, nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusInProduction {
		t.Fatalf("expected IN_PRODUCTION, got %s", order.Status)
	}
	kinds := publisher.Kinds()
	if len(kinds) != 1 || kinds[0] != model.EventFactoryAssigned {
		t.Fatalf("expected factory assigned event, got %v", kinds)
	}
}

func TestAssignFactoryRequiresFactory(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.PublisherStub{})
	if _, err := uc.AssignFactory(context.Background(), 1, 0, nil, 5); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.PublisherStub{})
	if _, err := uc.UpdateStatus(context.Background(), 1, "SHIPPED", 5); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateStatusDeliveredPublishesEvent(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo, publisher)

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusDelivered, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kinds := publisher.Kinds()
	if len(kinds) != 1 || kinds[0] != model.EventOrderDelivered {
		t.Fatalf("expected order delivered event, got %v", kinds)
	}

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusReady, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.Kinds()) != 1 {
		t.Fatal("expected no event for a non-delivery status change")
	}
}

func TestUpdateItemStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, &testhelpers.PublisherStub{})
	if _, err := uc.UpdateItemStatus(context.Background(), 1, 2, "IN_PRODUCTION"); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAlertApproachingDeadlines(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	soon := now.Add(24 * time.Hour)
	past := now.Add(-2 * time.Hour)

	publisher := &testhelpers.PublisherStub{}
	repo := &testhelpers.OrderRepositoryStub{
		Approaching: []model.Order{
			{ID: 1, Deadline: &soon},
			{ID: 2, Deadline: &past},
			{ID: 3},
		},
	}
	uc := NewOrderUseCase(repo, publisher)

	if err := uc.AlertApproachingDeadlines(context.Background(), now, 72*time.Hour, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := publisher.Kinds()
	if len(kinds) != 2 {
		t.Fatalf("expected two events, got %v", kinds)
	}
	if kinds[0] != model.EventDeadlineApproaching {
		t.Fatalf("expected approaching event for order 1, got %s", kinds[0])
	}
	if kinds[1] != model.EventDeadlineExceeded {
		t.Fatalf("expected exceeded event for order 2, got %s", kinds[1])
	}
}

func TestAlertApproachingDeadlinesPropagatesListError(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{Err: domainErrors.ErrLockTimeout}, &testhelpers.PublisherStub{})
	if err := uc.AlertApproachingDeadlines(context.Background(), time.Now(), time.Hour, 1); !errors.Is(err, domainErrors.ErrLockTimeout) {
		t.Fatalf("expected lock timeout, got %v", err)
	}
}
