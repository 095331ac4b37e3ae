package repository

import (
	"context"
	"time"

	"sebetamart/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page          int
	Limit         int
	Status        string
	PaymentStatus string
	SellerID      *int64
	From          *time.Time
	To            *time.Time
}

type SellerOrderStats struct {
	OrderCount            int64 `json:"order_count"`
	PendingCount          int64 `json:"pending_count"`
	ReadyForDeliveryCount int64 `json:"ready_for_delivery_count"`
	Revenue               int64 `json:"revenue"`
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)

	ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Order, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]model.Order, error)
	ListReadyForDelivery(ctx context.Context, sellerID int64) ([]model.Order, error)
	ListByDeliveryPersonID(ctx context.Context, deliveryPersonID int64) ([]model.Order, error)
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
	SellerStats(ctx context.Context, sellerID int64) (SellerOrderStats, error)

	// The following are conditional updates: false means the row did not
	// match the expected state and nothing was written.
	ConfirmPayment(ctx context.Context, orderID int64) (bool, error)
	AssignDeliveryPerson(ctx context.Context, orderID int64, deliveryPersonID int64) (bool, error)
	MarkDelivered(ctx context.Context, orderID int64, deliveryPersonID int64) (bool, error)
	Cancel(ctx context.Context, orderID int64, buyerID int64) (bool, error)
}
