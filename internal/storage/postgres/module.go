package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/config"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.BrandRepository { return s.Brands() },
		func(s *Storage) repository.ProcessRepository { return s.Processes() },
		func(s *Storage) repository.QuoteRepository { return s.Quotes() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Config.LockTimeout, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
