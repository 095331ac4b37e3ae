package repository

import (
	"context"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type subcityGormRepository struct {
	db *gorm.DB
}

func NewSubcityGormRepository(db *gorm.DB) repo.SubcityRepository {
	return &subcityGormRepository{db: db}
}

func (r *subcityGormRepository) List(ctx context.Context) ([]model.Subcity, error) {
	subcities := []model.Subcity{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&subcities).Error; err != nil {
		return nil, err
	}
	return subcities, nil
}

func (r *subcityGormRepository) FindByID(ctx context.Context, id int64) (model.Subcity, error) {
	var s model.Subcity
	err := r.db.WithContext(ctx).First(&s, id).Error
	if isNotFound(err) {
		return model.Subcity{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Subcity{}, err
	}
	return s, nil
}

func (r *subcityGormRepository) EnsureSeeded(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]model.Subcity, 0, len(names))
	for _, n := range names {
		rows = append(rows, model.Subcity{Name: n})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error
}
