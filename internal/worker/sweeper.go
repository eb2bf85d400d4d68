package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// SweepFacade exposes the subset of application functionality required by the sweeper.
type SweepFacade interface {
	ExpirableQuotes(ctx context.Context, before time.Time, limit int) ([]model.Quote, error)
	ExpireQuote(ctx context.Context, quoteID, actorID int64) error
	AlertApproachingDeadlines(ctx context.Context, now time.Time, window time.Duration, limit int) error
}

// Sweeper periodically expires overdue quotes and raises deadline alerts,
// fanning expirations out over a worker pool. A failure on one quote never
// stops the rest of the batch.
type Sweeper struct {
	facade         SweepFacade
	interval       time.Duration
	batchSize      int
	workers        int
	deadlineWindow time.Duration
	logger         *slog.Logger

	jobs   chan model.Quote
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSweeper constructs the expiration sweeper worker pool.
func NewSweeper(facade SweepFacade, interval, deadlineWindow time.Duration, batchSize, workers int, logger *slog.Logger) *Sweeper {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Sweeper{
		facade:         facade,
		interval:       interval,
		batchSize:      batchSize,
		workers:        workers,
		deadlineWindow: deadlineWindow,
		logger:         logger,
		jobs:           make(chan model.Quote, batchSize*workers),
	}
}

// Start launches background sweeping.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sweeper) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	now := time.Now()

	if err := s.facade.AlertApproachingDeadlines(ctx, now, s.deadlineWindow, s.batchSize); err != nil {
		s.logger.Error("deadline alert pass failed", slog.String("error", err.Error()))
	}

	quotes, err := s.facade.ExpirableQuotes(ctx, now, s.batchSize)
	if err != nil {
		s.logger.Error("fetch expirable quotes failed", slog.String("error", err.Error()))
		return
	}
	for _, quote := range quotes {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- quote:
		}
	}
}

func (s *Sweeper) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case quote, ok := <-s.jobs:
			if !ok {
				return
			}
			s.expire(ctx, quote)
		}
	}
}

func (s *Sweeper) expire(ctx context.Context, quote model.Quote) {
	err := s.facade.ExpireQuote(ctx, quote.ID, model.SystemActorID)
	switch {
	case err == nil:
		s.logger.Info("quote expired",
			slog.Int64("quote", quote.ID),
			slog.Int64("brand", quote.BrandID),
		)
	case errors.Is(err, domainErrors.ErrLockTimeout):
		// The brand's process is busy; the next sweep will pick the quote up again.
		s.logger.Warn("quote expiry skipped, process locked", slog.Int64("quote", quote.ID))
	case errors.Is(err, domainErrors.ErrInvalidState):
		// Accepted or declined between the listing and the lock. Nothing to do.
	default:
		s.logger.Error("quote expiry failed",
			slog.Int64("quote", quote.ID),
			slog.String("error", err.Error()),
		)
	}
}
