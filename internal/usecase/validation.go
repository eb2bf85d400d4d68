package usecase

import (
	"fmt"

	domainErrors "github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/errors"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// ValidateQuoteItems checks line-level input before any write: known product
// references, positive quantities and prices, no product listed twice.
// An empty item list is legal, its total is zero.
func ValidateQuoteItems(items []model.QuoteItem) error {
	seen := make(map[int64]struct{}, len(items))
	for i, item := range items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: item %d has no product reference", domainErrors.ErrValidation, i)
		}
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("%w: product %d listed more than once", domainErrors.ErrValidation, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: product %d has non-positive quantity %d", domainErrors.ErrValidation, item.ProductID, item.Quantity)
		}
		if !item.UnitPrice.IsPositive() {
			return fmt.Errorf("%w: product %d has non-positive unit price %s", domainErrors.ErrValidation, item.ProductID, item.UnitPrice)
		}
	}
	return nil
}
