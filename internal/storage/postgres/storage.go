package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/repository"
)

// DBPool is the subset of pgxpool.Pool the storage uses. Declared as an
// interface so tests can substitute a pgxmock pool.
type DBPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool        DBPool
	logger      *slog.Logger
	lockTimeout time.Duration
}

var _ repository.Factory = (*Storage)(nil)

type brandRepository struct {
	storage *Storage
}

type processRepository struct {
	storage *Storage
}

type quoteRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization. Prices travel as
// shopspring decimals, registered on every new connection.
func New(ctx context.Context, dsn string, lockTimeout time.Duration, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger, lockTimeout: lockTimeout}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Brands() repository.BrandRepository {
	return &brandRepository{storage: s}
}

func (s *Storage) Processes() repository.ProcessRepository {
	return &processRepository{storage: s}
}

func (s *Storage) Quotes() repository.QuoteRepository {
	return &quoteRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS brands (
            id BIGSERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS factories (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS brand_processes (
            id BIGSERIAL PRIMARY KEY,
            brand_id BIGINT UNIQUE NOT NULL REFERENCES brands(id),
            status TEXT NOT NULL,
            version BIGINT NOT NULL DEFAULT 1,
            payload JSONB,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS process_history (
            id BIGSERIAL PRIMARY KEY,
            process_id BIGINT NOT NULL REFERENCES brand_processes(id),
            from_status TEXT,
            to_status TEXT NOT NULL,
            actor_id BIGINT NOT NULL,
            payload JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS quotes (
            id BIGSERIAL PRIMARY KEY,
            brand_id BIGINT NOT NULL REFERENCES brands(id),
            status TEXT NOT NULL,
            currency TEXT NOT NULL,
            total_price NUMERIC(14,2) NOT NULL DEFAULT 0,
            valid_until TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            accepted_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS quote_items (
            id BIGSERIAL PRIMARY KEY,
            quote_id BIGINT NOT NULL REFERENCES quotes(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity BIGINT NOT NULL,
            unit_price NUMERIC(14,2) NOT NULL,
            line_total NUMERIC(14,2) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            quote_id BIGINT UNIQUE NOT NULL REFERENCES quotes(id),
            brand_id BIGINT NOT NULL REFERENCES brands(id),
            factory_id BIGINT REFERENCES factories(id),
            status TEXT NOT NULL,
            total_price NUMERIC(14,2) NOT NULL,
            deadline TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            delivered_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id BIGINT NOT NULL REFERENCES products(id),
            quantity BIGINT NOT NULL,
            unit_price NUMERIC(14,2) NOT NULL,
            line_total NUMERIC(14,2) NOT NULL,
            status TEXT NOT NULL,
            planned_delivery_at TIMESTAMPTZ,
            actual_delivery_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_process_history_process ON process_history(process_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_status_valid ON quotes(status, valid_until)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_brand ON orders(brand_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// setLockTimeoutTx bounds row-lock waits for the current transaction so a
// slow holder cannot wedge a brand's workflow indefinitely.
func (s *Storage) setLockTimeoutTx(ctx context.Context, tx pgx.Tx) error {
	timeout := s.lockTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return err
	}
	return nil
}

// mapPgError translates driver errors into domain sentinels.
func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domainErrors.ErrAlreadyExists
		case "23503":
			return domainErrors.ErrNotFound
		case "55P03":
			return domainErrors.ErrLockTimeout
		}
	}
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
