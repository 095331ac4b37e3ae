package repository

import "context"

type InventoryRepository interface {
	// DecreaseStockIfEnough decrements only when stock >= qty.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
