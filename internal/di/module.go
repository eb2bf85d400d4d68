package di

import (
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/adapter/notifier"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/app"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/config"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/logger"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/handlers"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/router"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/storage/postgres"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		notifier.Module,
		usecase.Module,
		fx.Provide(func(facade *app.WorkflowFacade) handlers.WorkflowFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
