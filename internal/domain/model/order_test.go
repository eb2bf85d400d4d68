package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrderFromQuoteCopiesPricing(t *testing.T) {
	quote := &Quote{
		ID:         5,
		BrandID:    3,
		TotalPrice: decimal.RequireFromString("125.50"),
		Items: []QuoteItem{
			{ProductID: 1, Quantity: 10, UnitPrice: decimal.RequireFromString("10.00"), LineTotal: decimal.RequireFromString("100.00")},
			{ProductID: 2, Quantity: 5, UnitPrice: decimal.RequireFromString("5.10"), LineTotal: decimal.RequireFromString("25.50")},
		},
	}
	deadline := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	order := OrderFromQuote(quote, map[int64]time.Time{2: deadline})

	if order.QuoteID != 5 || order.BrandID != 3 {
		t.Fatalf("unexpected order identifiers %+v", order)
	}
	if order.Status != OrderStatusPending {
		t.Fatalf("expected PENDING, got %s", order.Status)
	}
	if !order.TotalPrice.Equal(quote.TotalPrice) {
		t.Fatalf("expected total %s, got %s", quote.TotalPrice, order.TotalPrice)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected two items, got %d", len(order.Items))
	}
	for i, item := range order.Items {
		if item.Status != OrderItemStatusPending {
			t.Fatalf("expected pending item, got %s", item.Status)
		}
		if !item.LineTotal.Equal(quote.Items[i].LineTotal) {
			t.Fatalf("line total mismatch on item %d", i)
		}
	}
	if order.Items[0].PlannedDeliveryAt != nil {
		t.Fatal("expected no planned delivery on product 1")
	}
	if order.Items[1].PlannedDeliveryAt == nil || !order.Items[1].PlannedDeliveryAt.Equal(deadline) {
		t.Fatalf("expected planned delivery %s on product 2", deadline)
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range OrderStatuses {
		if !ValidOrderStatus(status) {
			t.Fatalf("expected %s to be valid", status)
		}
	}
	if ValidOrderStatus("SHIPPED") {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestValidOrderItemStatus(t *testing.T) {
	if !ValidOrderItemStatus(OrderItemStatusReady) {
		t.Fatal("expected READY to be valid")
	}
	if ValidOrderItemStatus("IN_PRODUCTION") {
		t.Fatal("expected item status IN_PRODUCTION to be invalid")
	}
}
