package repository

import (
	"context"

	"sebetamart/internal/domain/model"
)

type DeliveryProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (*model.DeliveryProfile, error)
	// Upsert creates the profile (offline) or updates vehicle fields.
	Upsert(ctx context.Context, profile *model.DeliveryProfile) error
	// SetAvailability writes to only when the current status equals from.
	SetAvailability(ctx context.Context, userID int64, from, to model.AvailabilityStatus) (bool, error)
}
