package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

const sendTimeout = 15 * time.Second

// Dispatcher queues events on a bounded buffer and delivers them
// asynchronously. Publish never blocks a workflow transaction: when the
// buffer is full, the event is dropped and logged.
type Dispatcher struct {
	sender Sender
	logger *slog.Logger

	events chan model.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs a dispatcher with the given buffer capacity.
func NewDispatcher(sender Sender, buffer int, logger *slog.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 1
	}
	return &Dispatcher{
		sender: sender,
		logger: logger,
		events: make(chan model.Event, buffer),
	}
}

// Publish enqueues the event without blocking.
func (d *Dispatcher) Publish(event model.Event) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("notification dropped, buffer full",
			slog.String("kind", string(event.Kind)),
			slog.Int64("entity_id", event.EntityID),
		)
	}
}

// Start launches the delivery loop.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	d.wg.Add(1)
	go d.run(runCtx)
}

// Stop drains nothing; queued events past the cancellation point are lost,
// which is acceptable for best-effort delivery.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.events:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event model.Event) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, event); err != nil {
		d.logger.Error("notification delivery failed",
			slog.String("kind", string(event.Kind)),
			slog.Int64("entity_id", event.EntityID),
			slog.String("error", err.Error()),
		)
	}
}
