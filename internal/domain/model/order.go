package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the production/delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "PENDING"
	OrderStatusInProduction OrderStatus = "IN_PRODUCTION"
	OrderStatusReady        OrderStatus = "READY"
	OrderStatusDelivered    OrderStatus = "DELIVERED"
	OrderStatusCancelled    OrderStatus = "CANCELLED"
)

// OrderStatuses lists every known order status.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProduction,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ValidOrderStatus reports whether the value is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// OrderItemStatus describes a single order line's delivery state.
type OrderItemStatus string

const (
	OrderItemStatusPending   OrderItemStatus = "PENDING"
	OrderItemStatusReady     OrderItemStatus = "READY"
	OrderItemStatusDelivered OrderItemStatus = "DELIVERED"
)

// ValidOrderItemStatus reports whether the value is a known order item status.
func ValidOrderItemStatus(s OrderItemStatus) bool {
	switch s {
	case OrderItemStatusPending, OrderItemStatusReady, OrderItemStatusDelivered:
		return true
	}
	return false
}

// Order is the production unit created from exactly one accepted quote.
// TotalPrice is copied from the quote at creation and never recomputed.
type Order struct {
	ID          int64
	QuoteID     int64
	BrandID     int64
	FactoryID   *int64
	Status      OrderStatus
	TotalPrice  decimal.Decimal
	Deadline    *time.Time
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeliveredAt *time.Time
}

// OrderItem mirrors one quote line at acceptance time.
type OrderItem struct {
	ID                int64
	OrderID           int64
	ProductID         int64
	Quantity          int64
	UnitPrice         decimal.Decimal
	LineTotal         decimal.Decimal
	Status            OrderItemStatus
	PlannedDeliveryAt *time.Time
	ActualDeliveryAt  *time.Time
}

// OrderFromQuote materializes a pending order from an accepted quote.
// Quantities, prices and the total are copied verbatim; the optional
// per-product deadlines become planned delivery dates on the matching items.
func OrderFromQuote(quote *Quote, deadlines map[int64]time.Time) *Order {
	order := &Order{
		QuoteID:    quote.ID,
		BrandID:    quote.BrandID,
		Status:     OrderStatusPending,
		TotalPrice: quote.TotalPrice,
		Items:      make([]OrderItem, 0, len(quote.Items)),
	}
	for _, item := range quote.Items {
		orderItem := OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
			Status:    OrderItemStatusPending,
		}
		if deadline, ok := deadlines[item.ProductID]; ok {
			d := deadline
			orderItem.PlannedDeliveryAt = &d
		}
		order.Items = append(order.Items, orderItem)
	}
	return order
}
