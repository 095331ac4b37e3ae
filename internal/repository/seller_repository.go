package repository

import (
	"context"

	"sebetamart/internal/domain/model"
)

type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	FindByID(ctx context.Context, sellerID int64) (*model.Seller, error)
	FindByUserID(ctx context.Context, userID int64) (*model.Seller, error)
	List(ctx context.Context) ([]model.Seller, error)
	SearchByShopName(ctx context.Context, q string, limit int) ([]model.Seller, error)
}
