package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

func (s *Storage) lockOrderTx(ctx context.Context, tx pgx.Tx, orderID int64) (*model.Order, error) {
	if err := s.setLockTimeoutTx(ctx, tx); err != nil {
		return nil, err
	}
	const query = `SELECT id, quote_id, brand_id, factory_id, status, total_price, deadline, created_at, updated_at, delivered_at
                   FROM orders WHERE id=$1 FOR UPDATE`
	var o model.Order
	err := tx.QueryRow(ctx, query, orderID).Scan(&o.ID, &o.QuoteID, &o.BrandID, &o.FactoryID, &o.Status, &o.TotalPrice, &o.Deadline, &o.CreatedAt, &o.UpdatedAt, &o.DeliveredAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	return &o, nil
}

func (s *Storage) insertOrderItemsTx(ctx context.Context, tx pgx.Tx, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	const insert = `INSERT INTO order_items (order_id, product_id, quantity, unit_price, line_total, status, planned_delivery_at)
                    VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	inserted := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		item.OrderID = orderID
		if err := tx.QueryRow(ctx, insert, orderID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal, item.Status, item.PlannedDeliveryAt).Scan(&item.ID); err != nil {
			return nil, mapPgError(err)
		}
		inserted = append(inserted, item)
	}
	return inserted, nil
}

func (s *Storage) orderItems(ctx context.Context, q rowQuerier, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, quantity, unit_price, line_total, status, planned_delivery_at, actual_delivery_at
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.LineTotal, &item.Status, &item.PlannedDeliveryAt, &item.ActualDeliveryAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, quote_id, brand_id, factory_id, status, total_price, deadline, created_at, updated_at, delivered_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.QuoteID, &o.BrandID, &o.FactoryID, &o.Status, &o.TotalPrice, &o.Deadline, &o.CreatedAt, &o.UpdatedAt, &o.DeliveredAt)
	if err != nil {
		return nil, mapPgError(err)
	}
	items, err := r.storage.orderItems(ctx, r.storage.pool, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) AssignFactory(ctx context.Context, orderID, factoryID int64, deadline *time.Time, actorID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.lockOrderTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if o.Status != model.OrderStatusPending {
			return fmt.Errorf("%w: order %d is %s, only a PENDING order can be assigned", domainErrors.ErrInvalidState, orderID, o.Status)
		}

		const update = `UPDATE orders
                        SET factory_id=$1, deadline=$2, status=$3, updated_at=NOW()
                        WHERE id=$4
                        RETURNING updated_at`
		if err := tx.QueryRow(ctx, update, factoryID, deadline, model.OrderStatusInProduction, orderID).Scan(&o.UpdatedAt); err != nil {
			// a missing factory surfaces as a foreign key violation
			return mapPgError(err)
		}
		o.FactoryID = &factoryID
		o.Deadline = deadline
		o.Status = model.OrderStatusInProduction

		if _, err := r.storage.transitionTx(ctx, tx, o.BrandID, model.ProcessStatusSentToFactory, actorID, model.FactoryPayload(orderID, factoryID)); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, actorID int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.lockOrderTx(ctx, tx, orderID)
		if err != nil {
			return err
		}

		firstDelivery := status == model.OrderStatusDelivered && o.DeliveredAt == nil
		if firstDelivery {
			const update = `UPDATE orders SET status=$1, delivered_at=NOW(), updated_at=NOW() WHERE id=$2 RETURNING delivered_at, updated_at`
			if err := tx.QueryRow(ctx, update, status, orderID).Scan(&o.DeliveredAt, &o.UpdatedAt); err != nil {
				return mapPgError(err)
			}
		} else {
			const update = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING updated_at`
			if err := tx.QueryRow(ctx, update, status, orderID).Scan(&o.UpdatedAt); err != nil {
				return mapPgError(err)
			}
		}
		o.Status = status

		if firstDelivery {
			// Completing the brand process is conditional: a cancelled or
			// otherwise diverged process is left as is.
			proc, err := r.storage.lockProcessTx(ctx, tx, o.BrandID)
			if err != nil {
				return err
			}
			if model.CanTransition(proc.Status, model.ProcessStatusCompleted) {
				if _, err := r.storage.applyTransitionTx(ctx, tx, proc, model.ProcessStatusCompleted, actorID, model.DeliveryPayload(orderID)); err != nil {
					return err
				}
			}
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) UpdateItemStatus(ctx context.Context, orderID, itemID int64, status model.OrderItemStatus) (*model.OrderItem, error) {
	var item *model.OrderItem
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := r.storage.setLockTimeoutTx(ctx, tx); err != nil {
			return err
		}
		const query = `SELECT id, order_id, product_id, quantity, unit_price, line_total, status, planned_delivery_at, actual_delivery_at
                       FROM order_items WHERE id=$1 AND order_id=$2 FOR UPDATE`
		var current model.OrderItem
		err := tx.QueryRow(ctx, query, itemID, orderID).Scan(&current.ID, &current.OrderID, &current.ProductID, &current.Quantity, &current.UnitPrice, &current.LineTotal, &current.Status, &current.PlannedDeliveryAt, &current.ActualDeliveryAt)
		if err != nil {
			return mapPgError(err)
		}

		if status == model.OrderItemStatusDelivered && current.ActualDeliveryAt == nil {
			const update = `UPDATE order_items SET status=$1, actual_delivery_at=NOW() WHERE id=$2 RETURNING actual_delivery_at`
			if err := tx.QueryRow(ctx, update, status, itemID).Scan(&current.ActualDeliveryAt); err != nil {
				return mapPgError(err)
			}
		} else {
			if _, err := tx.Exec(ctx, `UPDATE order_items SET status=$1 WHERE id=$2`, status, itemID); err != nil {
				return mapPgError(err)
			}
		}
		current.Status = status
		item = &current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *orderRepository) ListByBrand(ctx context.Context, brandID int64) ([]model.Order, error) {
	const query = `SELECT id, quote_id, brand_id, factory_id, status, total_price, deadline, created_at, updated_at, delivered_at
                   FROM orders WHERE brand_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, brandID)
}

func (r *orderRepository) ListApproachingDeadline(ctx context.Context, before time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT id, quote_id, brand_id, factory_id, status, total_price, deadline, created_at, updated_at, delivered_at
                   FROM orders
                   WHERE deadline IS NOT NULL AND deadline < $1 AND delivered_at IS NULL AND status <> $2
                   ORDER BY deadline
                   LIMIT $3`
	return r.listOrders(ctx, query, before, model.OrderStatusCancelled, limit)
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.QuoteID, &o.BrandID, &o.FactoryID, &o.Status, &o.TotalPrice, &o.Deadline, &o.CreatedAt, &o.UpdatedAt, &o.DeliveredAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
