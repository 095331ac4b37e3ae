package model

import "time"

type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BuyerID   int64     `gorm:"not null;uniqueIndex:idx_favorites_buyer_product" json:"buyer_id"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_favorites_buyer_product" json:"product_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
