package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

func TestValidateQuoteItemsAcceptsEmptyList(t *testing.T) {
	if err := ValidateQuoteItems(nil); err != nil {
		t.Fatalf("expected empty list to be legal, got %v", err)
	}
}

func TestValidateQuoteItemsAcceptsWellFormedItems(t *testing.T) {
	items := []model.QuoteItem{
		{ProductID: 1, Quantity: 10, UnitPrice: decimal.RequireFromString("12.50")},
		{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("0.01")},
	}
	if err := ValidateQuoteItems(items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuoteItemsRejectsBadInput(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	cases := []struct {
		name  string
		items []model.QuoteItem
	}{
		{"missing product", []model.QuoteItem{{Quantity: 1, UnitPrice: price}}},
		{"duplicate product", []model.QuoteItem{
			{ProductID: 1, Quantity: 1, UnitPrice: price},
			{ProductID: 1, Quantity: 2, UnitPrice: price},
		}},
		{"zero quantity", []model.QuoteItem{{ProductID: 1, UnitPrice: price}}},
		{"negative quantity", []model.QuoteItem{{ProductID: 1, Quantity: -5, UnitPrice: price}}},
		{"zero price", []model.QuoteItem{{ProductID: 1, Quantity: 1}}},
		{"negative price", []model.QuoteItem{{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("-1")}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateQuoteItems(tc.items); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
