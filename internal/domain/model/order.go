package model

import "time"

type PaymentStatus string

const (
	PaymentStatusUnpaid    PaymentStatus = "unpaid"
	PaymentStatusConfirmed PaymentStatus = "payment_confirmed"
)

type OrderStatus string

const (
	OrderStatusPending             OrderStatus = "pending"
	OrderStatusAssignedForDelivery OrderStatus = "assigned_for_delivery"
	OrderStatusDelivered           OrderStatus = "delivered"
	OrderStatusCancelled           OrderStatus = "cancelled"
)

// Order is a single-product purchase.
// DeliveryPersonID stays nil until assignment and is written at most once.
type Order struct {
	ID               int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID          int64         `gorm:"not null;index" json:"buyer_id"`
	ProductID        int64         `gorm:"not null;index" json:"product_id"`
	SellerID         int64         `gorm:"not null;index" json:"seller_id"`
	Quantity         int64         `gorm:"not null" json:"quantity"`
	TotalPrice       int64         `gorm:"not null" json:"total_price"`
	ShippingAddress  string        `gorm:"type:varchar(512)" json:"shipping_address"`
	SubcityID        *int64        `json:"subcity_id"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(30);not null;default:'unpaid';index" json:"payment_status"`
	Status           OrderStatus   `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	DeliveryPersonID *int64        `gorm:"index" json:"delivery_person_id"`
	CreatedAt        time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
