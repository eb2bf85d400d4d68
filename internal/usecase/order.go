package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/repository"
)

// OrderUseCase drives the order lifecycle from factory assignment to delivery.
type OrderUseCase struct {
	orders    repository.OrderRepository
	publisher Publisher
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, publisher Publisher) *OrderUseCase {
	return &OrderUseCase{orders: orders, publisher: publisher}
}

// Get loads one order with its items.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// ListByBrand returns a brand's orders, newest first.
func (u *OrderUseCase) ListByBrand(ctx context.Context, brandID int64) ([]model.Order, error) {
	return u.orders.ListByBrand(ctx, brandID)
}

// AssignFactory hands a PENDING order to a factory and moves the brand
// process to SENT_TO_FACTORY.
func (u *OrderUseCase) AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error) {
	if factoryID <= 0 {
		return nil, fmt.Errorf("%w: factory reference is required", domainErrors.ErrValidation)
	}
	order, err := u.orders.AssignFactory(ctx, orderID, factoryID, deadline, actorID)
	if err != nil {
		return nil, err
	}
	u.publisher.Publish(model.NewEvent(model.EventFactoryAssigned, "order", orderID,
		fmt.Sprintf("order %d sent to factory %d", orderID, factoryID)))
	return order, nil
}

// UpdateStatus moves the order between statuses. The first transition into
// DELIVERED stamps the delivery time exactly once.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", domainErrors.ErrValidation, status)
	}
	order, err := u.orders.UpdateStatus(ctx, orderID, status, actorID)
	if err != nil {
		return nil, err
	}
	if status == model.OrderStatusDelivered {
		u.publisher.Publish(model.NewEvent(model.EventOrderDelivered, "order", orderID,
			fmt.Sprintf("order %d delivered", orderID)))
	}
	return order, nil
}

// UpdateItemStatus moves one order line between statuses.
func (u *OrderUseCase) UpdateItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error) {
	if !model.ValidOrderItemStatus(status) {
		return nil, fmt.Errorf("%w: unknown order item status %q", domainErrors.ErrValidation, status)
	}
	return u.orders.UpdateItemStatus(ctx, orderID, itemID, status)
}

// AlertApproachingDeadlines emits a deadline event per active order whose
// deadline falls inside the window or is already past. Best effort.
func (u *OrderUseCase) AlertApproachingDeadlines(ctx context.Context, now time.Time, window time.Duration, limit int) error {
	orders, err := u.orders.ListApproachingDeadline(ctx, now.Add(window), limit)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if order.Deadline == nil {
			continue
		}
		kind := model.EventDeadlineApproaching
		message := fmt.Sprintf("order %d deadline %s approaching", order.ID, order.Deadline.Format(time.RFC3339))
		if order.Deadline.Before(now) {
			kind = model.EventDeadlineExceeded
			message = fmt.Sprintf("order %d deadline %s exceeded", order.ID, order.Deadline.Format(time.RFC3339))
		}
		u.publisher.Publish(model.NewEvent(kind, "order", order.ID, message))
	}
	return nil
}
