package notifier

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/config"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/usecase"
)

const defaultBuffer = 256

// Module exposes the event dispatcher to the fx graph and ties its
// delivery loop to the application lifecycle.
var Module = fx.Options(
	fx.Provide(
		newDispatcher,
		func(d *Dispatcher) usecase.Publisher { return d },
	),
	fx.Invoke(registerLifecycle),
)

type dispatcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) (*Dispatcher, error) {
	var sender Sender
	if p.Config.NotifierAddress == "" {
		sender = NewLogSender(p.Logger)
	} else {
		httpSender, err := NewHTTPSender(p.Config.NotifierAddress, p.Logger)
		if err != nil {
			return nil, err
		}
		sender = httpSender
	}
	return NewDispatcher(sender, defaultBuffer, p.Logger), nil
}

func registerLifecycle(lc fx.Lifecycle, d *Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			d.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Stop()
			return nil
		},
	})
}
