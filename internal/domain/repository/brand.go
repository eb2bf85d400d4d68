package repository

import (
	"context"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/domain/model"
)

// BrandRepository persists brands. Creation also inserts the brand's INIT
// process row in the same transaction; deletion is rejected while a process
// row exists.
type BrandRepository interface {
	Create(ctx context.Context, name string, actorID int64) (*model.Brand, error)
	GetByID(ctx context.Context, id int64) (*model.Brand, error)
	Delete(ctx context.Context, id int64) error
}
