package repository

import (
	"context"

	"sebetamart/internal/domain/model"
)

type FavoriteRepository interface {
	ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Favorite, error)
	// Add returns ErrConflict when the pair already exists.
	Add(ctx context.Context, buyerID, productID int64) (model.Favorite, error)
	// Remove returns ErrNotFound when the pair does not exist.
	Remove(ctx context.Context, buyerID, productID int64) error
}
