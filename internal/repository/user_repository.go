package repository

import (
	"context"

	"sebetamart/internal/domain/model"
)

type UserListFilter struct {
	Role  model.Role
	Limit int
}

// DeliveryPerson is a delivery-role user joined with the profile, when one exists.
type DeliveryPerson struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	IsActive           bool    `json:"is_active"`
	VehicleType        *string `json:"vehicle_type"`
	PlateNumber        *string `json:"plate_number"`
	AvailabilityStatus *string `json:"availability_status"`
}

type UserRepository interface {
	// Create returns ErrConflict when the email is taken.
	Create(ctx context.Context, user *model.User) error
	// FindByID / FindByEmail return ErrNotFound when missing.
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	IncrementTokenVersion(ctx context.Context, userID int64) error
	SetActive(ctx context.Context, userID int64, active bool) error
	List(ctx context.Context, f UserListFilter) ([]model.User, error)
	ListDeliveryPersons(ctx context.Context, availability string) ([]DeliveryPerson, error)
}
