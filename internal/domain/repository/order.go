package repository

import (
	"context"
	"time"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// OrderRepository persists orders created from accepted quotes.
type OrderRepository interface {
	// GetByID loads the order including its items.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	// AssignFactory sets the factory and optional deadline on a PENDING
	// order, moves it to IN_PRODUCTION and advances the brand process to
	// SENT_TO_FACTORY in the same transaction.
	AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error)
	// UpdateStatus moves the order between statuses. The first arrival at
	// DELIVERED stamps delivered_at and completes the brand process when
	// the matrix allows it.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error)
	// UpdateItemStatus moves one order line between statuses; the first
	// arrival at DELIVERED stamps the line's actual delivery date.
	UpdateItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error)
	ListByBrand(ctx context.Context, brandID int64) ([]model.Order, error)
	// ListApproachingDeadline returns active orders whose deadline falls
	// strictly before the given instant.
	ListApproachingDeadline(ctx context.Context, before time.Time, limit int) ([]model.Order, error)
}
