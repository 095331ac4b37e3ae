package repository

import (
	"context"

	"sebetamart/internal/domain/model"
	domainrepo "sebetamart/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domainrepo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if isNotFound(err) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userGormRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error
	if isNotFound(err) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// IncrementTokenVersion invalidates every session issued so far.
func (r *userGormRepository) IncrementTokenVersion(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *userGormRepository) SetActive(ctx context.Context, id int64, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *userGormRepository) List(ctx context.Context, f domainrepo.UserListFilter) ([]model.User, error) {
	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	q := r.db.WithContext(ctx).Model(&model.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}

	var users []model.User
	if err := q.Order("id asc").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userGormRepository) ListDeliveryPersons(ctx context.Context, availability string) ([]domainrepo.DeliveryPerson, error) {
	q := r.db.WithContext(ctx).
		Table("users").
		Select(`users.id, users.name, users.email, users.phone, users.is_active,
			delivery_profiles.vehicle_type, delivery_profiles.plate_number,
			delivery_profiles.availability_status`).
		Joins("LEFT JOIN delivery_profiles ON delivery_profiles.user_id = users.id").
		Where("users.role = ?", model.RoleDelivery)

	if availability != "" {
		q = q.Where("delivery_profiles.availability_status = ?", availability)
	}

	rows := []domainrepo.DeliveryPerson{}
	if err := q.Order("users.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
