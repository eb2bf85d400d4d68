package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignFactoryRequest binds a factory and an optional deadline to an order.
type AssignFactoryRequest struct {
	FactoryID int64      `json:"factory_id"`
	Deadline  *time.Time `json:"deadline,omitempty"`
}

// OrderStatusRequest moves an order between statuses.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemStatusRequest moves one order line between statuses.
type OrderItemStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse describes one stored order line.
type OrderItemResponse struct {
	ID                int64           `json:"id"`
	ProductID         int64           `json:"product_id"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	LineTotal         decimal.Decimal `json:"line_total"`
	Status            string          `json:"status"`
	PlannedDeliveryAt *time.Time      `json:"planned_delivery_at,omitempty"`
	ActualDeliveryAt  *time.Time      `json:"actual_delivery_at,omitempty"`
}

// OrderResponse describes an order with its items.
type OrderResponse struct {
	ID          int64               `json:"id"`
	QuoteID     int64               `json:"quote_id"`
	BrandID     int64               `json:"brand_id"`
	FactoryID   *int64              `json:"factory_id,omitempty"`
	Status      string              `json:"status"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
	Deadline    *time.Time          `json:"deadline,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	DeliveredAt *time.Time          `json:"delivered_at,omitempty"`
}
