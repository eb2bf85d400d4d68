package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineTotalFor(t *testing.T) {
	total := LineTotalFor(3, decimal.RequireFromString("19.99"))
	if !total.Equal(decimal.RequireFromString("59.97")) {
		t.Fatalf("expected 59.97, got %s", total)
	}
}

func TestQuoteTotalSumsLineTotals(t *testing.T) {
	items := []QuoteItem{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("10.10"), LineTotal: decimal.RequireFromString("20.20")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("0.01"), LineTotal: decimal.RequireFromString("0.01")},
	}
	total := QuoteTotal(items)
	if !total.Equal(decimal.RequireFromString("20.21")) {
		t.Fatalf("expected 20.21, got %s", total)
	}
}

func TestQuoteTotalOfEmptyListIsZero(t *testing.T) {
	if !QuoteTotal(nil).IsZero() {
		t.Fatal("expected zero total for empty item list")
	}
}

func TestEditable(t *testing.T) {
	cases := []struct {
		status   QuoteStatus
		editable bool
	}{
		{QuoteStatusDraft, true},
		{QuoteStatusOfferSent, true},
		{QuoteStatusAccepted, false},
		{QuoteStatusDeclined, false},
		{QuoteStatusExpired, false},
	}
	for _, tc := range cases {
		quote := Quote{Status: tc.status}
		if quote.Editable() != tc.editable {
			t.Fatalf("unexpected editable verdict for %s", tc.status)
		}
	}
}
