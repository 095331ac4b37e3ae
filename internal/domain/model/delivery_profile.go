package model

import "time"

type AvailabilityStatus string

const (
	AvailabilityOnline  AvailabilityStatus = "online"
	AvailabilityOffline AvailabilityStatus = "offline"
)

// Opposite returns the other availability value.
func (s AvailabilityStatus) Opposite() AvailabilityStatus {
	if s == AvailabilityOnline {
		return AvailabilityOffline
	}
	return AvailabilityOnline
}

// DeliveryProfile belongs to exactly one delivery-role user.
type DeliveryProfile struct {
	ID                 int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             int64              `gorm:"not null;uniqueIndex" json:"user_id"`
	VehicleType        string             `gorm:"type:varchar(50)" json:"vehicle_type"`
	PlateNumber        string             `gorm:"type:varchar(30)" json:"plate_number"`
	AvailabilityStatus AvailabilityStatus `gorm:"type:varchar(20);not null;default:'offline'" json:"availability_status"`
	CreatedAt          time.Time          `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
