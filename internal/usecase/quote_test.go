package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	testhelpers "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/test"
)

func TestQuoteCreatePricesItems(t *testing.T) {
	var stored *model.Quote
	repo := &testhelpers.QuoteRepositoryStub{
		CreateFn: func(ctx context.Context, quote *model.Quote, actorID int64) (*model.Quote, error) {
			stored = quote
			created := *quote
			created.ID = 1
			return &created, nil
		},
	}
	uc := NewQuoteUseCase(repo, &testhelpers.PublisherStub{})

	items := []model.QuoteItem{
		{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("19.99")},
		{ProductID: 2, Quantity: 100, UnitPrice: decimal.RequireFromString("0.10")},
	}
	quote, err := uc.Create(context.Background(), 7, items, "", time.Now().Add(48*time.Hour), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Currency != "TRY" {
		t.Fatalf("expected default currency TRY, got %q", quote.Currency)
	}
	if !stored.Items[0].LineTotal.Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("unexpected first line total %s", stored.Items[0].LineTotal)
	}
	if !stored.TotalPrice.Equal(decimal.RequireFromString("69.97")) {
		t.Fatalf("unexpected total %s", stored.TotalPrice)
	}
	if stored.Status != model.QuoteStatusOfferSent {
		t.Fatalf("expected OFFER_SENT, got %s", stored.Status)
	}
}

func TestQuoteCreateAllowsEmptyItemList(t *testing.T) {
	repo := &testhelpers.QuoteRepositoryStub{}
	uc := NewQuoteUseCase(repo, &testhelpers.PublisherStub{})

	quote, err := uc.Create(context.Background(), 7, nil, "TRY", time.Now(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.TotalPrice.IsZero() {
		t.Fatalf("expected zero total, got %s", quote.TotalPrice)
	}
}

func TestQuoteCreateRejectsBadItems(t *testing.T) {
	uc := NewQuoteUseCase(&testhelpers.QuoteRepositoryStub{}, &testhelpers.PublisherStub{})
	items := []model.QuoteItem{{ProductID: 1, Quantity: 0, UnitPrice: decimal.New(1, 0)}}
	if _, err := uc.Create(context.Background(), 7, items, "TRY", time.Now(), 5); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuoteAcceptPublishesEvents(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	repo := &testhelpers.QuoteRepositoryStub{
		AcceptFn: func(ctx context.Context, quoteID int64, deadlines map[int64]time.Time, actorID int64) (*model.Order, error) {
			return &model.Order{ID: 42, QuoteID: quoteID, Status: model.OrderStatusPending}, nil
		},
	}
	uc := NewQuoteUseCase(repo, publisher)

	order, err := uc.Accept(context.Background(), 9, nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 42 {
		t.Fatalf("unexpected order %+v", order)
	}

	kinds := publisher.Kinds()
	want := []model.EventKind{model.EventQuoteAccepted, model.EventNewOrder, model.EventFactoryAssignmentNeed}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(kinds))
	}
	for i, kind := range want {
		if kinds[i] != kind {
			t.Fatalf("expected event %s at position %d, got %s", kind, i, kinds[i])
		}
	}
}

func TestQuoteAcceptFailurePublishesNothing(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	repo := &testhelpers.QuoteRepositoryStub{Err: domainErrors.ErrInvalidState}
	uc := NewQuoteUseCase(repo, publisher)

	if _, err := uc.Accept(context.Background(), 9, nil, 5); !errors.Is(err, domainErrors.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	if len(publisher.Events()) != 0 {
		t.Fatal("expected no events after a failed accept")
	}
}

func TestQuoteExpirePublishesEvent(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	repo := &testhelpers.QuoteRepositoryStub{}
	uc := NewQuoteUseCase(repo, publisher)

	if err := uc.Expire(context.Background(), 3, model.SystemActorID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kinds := publisher.Kinds()
	if len(kinds) != 1 || kinds[0] != model.EventQuoteExpired {
		t.Fatalf("expected one quote expired event, got %v", kinds)
	}
}

func TestQuoteExpireSkipsEventOnFailure(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	repo := &testhelpers.QuoteRepositoryStub{Err: domainErrors.ErrLockTimeout}
	uc := NewQuoteUseCase(repo, publisher)

	if err := uc.Expire(context.Background(), 3, model.SystemActorID); !errors.Is(err, domainErrors.ErrLockTimeout) {
		t.Fatalf("expected lock timeout, got %v", err)
	}
	if len(publisher.Events()) != 0 {
		t.Fatal("expected no events after a failed expire")
	}
}

func TestQuoteUpdateValidatesItems(t *testing.T) {
	uc := NewQuoteUseCase(&testhelpers.QuoteRepositoryStub{}, &testhelpers.PublisherStub{})
	items := []model.QuoteItem{{ProductID: -1, Quantity: 1, UnitPrice: decimal.New(1, 0)}}
	if _, err := uc.Update(context.Background(), 1, items, time.Now(), 5); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
