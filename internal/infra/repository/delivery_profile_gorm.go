package repository

import (
	"context"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deliveryProfileGormRepository struct {
	db *gorm.DB
}

func NewDeliveryProfileGormRepository(db *gorm.DB) repo.DeliveryProfileRepository {
	return &deliveryProfileGormRepository{db: db}
}

func (r *deliveryProfileGormRepository) FindByUserID(ctx context.Context, userID int64) (*model.DeliveryProfile, error) {
	var p model.DeliveryProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if isNotFound(err) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert keeps the current availability when the profile already exists.
func (r *deliveryProfileGormRepository) Upsert(ctx context.Context, profile *model.DeliveryProfile) error {
	if profile.AvailabilityStatus == "" {
		profile.AvailabilityStatus = model.AvailabilityOffline
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vehicle_type", "plate_number", "updated_at"}),
		}).
		Create(profile).Error
	if err != nil {
		return err
	}

	saved, err := r.FindByUserID(ctx, profile.UserID)
	if err != nil {
		return err
	}
	*profile = *saved
	return nil
}

func (r *deliveryProfileGormRepository) SetAvailability(ctx context.Context, userID int64, from, to model.AvailabilityStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.DeliveryProfile{}).
		Where("user_id = ? AND availability_status = ?", userID, from).
		Update("availability_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
