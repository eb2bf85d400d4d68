package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	testhelpers "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/test"
)

func newProcessUseCase() (*ProcessUseCase, *testhelpers.ProcessRepositoryStub, *testhelpers.BrandRepositoryStub) {
	processes := testhelpers.NewProcessRepositoryStub()
	brands := testhelpers.NewBrandRepositoryStub(processes)
	return NewProcessUseCase(brands, processes, NopPublisher{}), processes, brands
}

func TestCreateBrandStartsAtInit(t *testing.T) {
	uc, processes, _ := newProcessUseCase()

	brand, err := uc.CreateBrand(context.Background(), "  Lunapark  ", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if brand.Name != "Lunapark" {
		t.Fatalf("expected trimmed name, got %q", brand.Name)
	}

	status, err := uc.CurrentStatus(context.Background(), brand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != model.ProcessStatusInit {
		t.Fatalf("expected INIT, got %s", status)
	}
	if processes.HistoryLen(brand.ID) != 1 {
		t.Fatalf("expected one history record after creation")
	}
}

func TestCreateBrandRejectsEmptyName(t *testing.T) {
	uc, _, _ := newProcessUseCase()
	if _, err := uc.CreateBrand(context.Background(), "   ", 5); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateBrandRejectsDuplicateName(t *testing.T) {
	uc, _, _ := newProcessUseCase()
	if _, err := uc.CreateBrand(context.Background(), "Lunapark", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CreateBrand(context.Background(), "Lunapark", 5); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestMarkSampleLeftAppendsHistory(t *testing.T) {
	uc, processes, _ := newProcessUseCase()
	brand, _ := uc.CreateBrand(context.Background(), "Lunapark", 5)

	proc, err := uc.MarkSampleLeft(context.Background(), brand.ID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proc.Status != model.ProcessStatusSampleLeft {
		t.Fatalf("expected SAMPLE_LEFT, got %s", proc.Status)
	}
	if processes.HistoryLen(brand.ID) != 2 {
		t.Fatalf("expected two history records, got %d", processes.HistoryLen(brand.ID))
	}

	history, err := uc.History(context.Background(), brand.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	latest := history[0]
	if latest.ToStatus != model.ProcessStatusSampleLeft {
		t.Fatalf("expected latest to_status SAMPLE_LEFT, got %s", latest.ToStatus)
	}
	if latest.FromStatus == nil || *latest.FromStatus != model.ProcessStatusInit {
		t.Fatalf("expected from_status INIT, got %v", latest.FromStatus)
	}
}

func TestTransitionRejectsIllegalEdge(t *testing.T) {
	uc, _, _ := newProcessUseCase()
	brand, _ := uc.CreateBrand(context.Background(), "Lunapark", 5)

	_, err := uc.Transition(context.Background(), brand.ID, model.ProcessStatusCompleted, nil, 5)
	if !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}

	var transitionErr *domainErrors.TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected transition error with endpoints, got %T", err)
	}
	if transitionErr.From != string(model.ProcessStatusInit) || transitionErr.To != string(model.ProcessStatusCompleted) {
		t.Fatalf("unexpected endpoints %s -> %s", transitionErr.From, transitionErr.To)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	uc, _, _ := newProcessUseCase()
	brand, _ := uc.CreateBrand(context.Background(), "Lunapark", 5)

	if _, err := uc.Transition(context.Background(), brand.ID, "SHIPPED", nil, 5); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTransitionUnknownBrand(t *testing.T) {
	uc, _, _ := newProcessUseCase()
	if _, err := uc.MarkSampleLeft(context.Background(), 404, 5); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCancelRecordsReason(t *testing.T) {
	uc, _, _ := newProcessUseCase()
	brand, _ := uc.CreateBrand(context.Background(), "Lunapark", 5)

	proc, err := uc.Cancel(context.Background(), brand.ID, "brand withdrew", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if proc.Status != model.ProcessStatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", proc.Status)
	}

	history, _ := uc.History(context.Background(), brand.ID)
	if len(history[0].Payload) == 0 {
		t.Fatal("expected cancel payload in latest history record")
	}
}

func TestConcurrentTransitionsHaveSingleWinner(t *testing.T) {
	uc, processes, _ := newProcessUseCase()
	brand, _ := uc.CreateBrand(context.Background(), "Lunapark", 5)

	const racers = 16
	var wg sync.WaitGroup
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.MarkSampleLeft(context.Background(), brand.ID, 5)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winner, got %d", wins)
	}
	if losses != racers-1 {
		t.Fatalf("expected %d rejected racers, got %d", racers-1, losses)
	}
	if processes.HistoryLen(brand.ID) != 2 {
		t.Fatalf("expected exactly one new history record, got %d total", processes.HistoryLen(brand.ID))
	}
}
