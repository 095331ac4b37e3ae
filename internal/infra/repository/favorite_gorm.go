package repository

import (
	"context"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"gorm.io/gorm"
)

type favoriteGormRepository struct {
	db *gorm.DB
}

func NewFavoriteGormRepository(db *gorm.DB) repo.FavoriteRepository {
	return &favoriteGormRepository{db: db}
}

func (r *favoriteGormRepository) ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Favorite, error) {
	favs := []model.Favorite{}
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("buyer_id = ?", buyerID).
		Order("id desc").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	return favs, nil
}

func (r *favoriteGormRepository) Add(ctx context.Context, buyerID, productID int64) (model.Favorite, error) {
	fav := model.Favorite{BuyerID: buyerID, ProductID: productID}
	if err := r.db.WithContext(ctx).Omit("Product").Create(&fav).Error; err != nil {
		if isUniqueViolation(err) {
			return model.Favorite{}, repo.ErrConflict
		}
		return model.Favorite{}, err
	}
	return fav, nil
}

func (r *favoriteGormRepository) Remove(ctx context.Context, buyerID, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Delete(&model.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
