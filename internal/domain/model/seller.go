package model

import "time"

// Seller is the shop owned by a seller-role user. One shop per user.
type Seller struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	ShopName    string    `gorm:"type:varchar(255);not null;index" json:"shop_name"`
	Description string    `gorm:"type:text" json:"description"`
	Phone       string    `gorm:"type:varchar(30)" json:"phone"`
	SubcityID   *int64    `gorm:"index" json:"subcity_id"`
	LogoURL     string    `gorm:"type:varchar(512)" json:"logo_url"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
