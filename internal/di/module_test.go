package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/app"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/config"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/repository"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/storage/postgres"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/test"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/usecase"
	"go.uber.org/fx"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		SweepInterval:   time.Millisecond,
		SweepBatchSize:  1,
		WorkerPoolSize:  1,
		LockTimeout:     time.Second,
		DeadlineWindow:  time.Hour,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	processRepo := test.NewProcessRepositoryStub()
	brandRepo := test.NewBrandRepositoryStub(processRepo)
	quoteRepo := &test.QuoteRepositoryStub{}
	orderRepo := &test.OrderRepositoryStub{}
	publisher := &test.PublisherStub{}

	var facade *app.WorkflowFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.BrandRepository(brandRepo)),
			fx.Replace(repository.ProcessRepository(processRepo)),
			fx.Replace(repository.QuoteRepository(quoteRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(usecase.Publisher(publisher)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected workflow facade instance")
	}
}
