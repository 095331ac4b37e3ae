package repository

import (
	"context"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"

	"gorm.io/gorm"
)

type sellerGormRepository struct {
	db *gorm.DB
}

func NewSellerGormRepository(db *gorm.DB) repo.SellerRepository {
	return &sellerGormRepository{db: db}
}

func (r *sellerGormRepository) Create(ctx context.Context, seller *model.Seller) error {
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		if isUniqueViolation(err) {
			return repo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *sellerGormRepository) FindByID(ctx context.Context, id int64) (*model.Seller, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *sellerGormRepository) FindByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *sellerGormRepository) findOne(ctx context.Context, cond string, arg int64) (*model.Seller, error) {
	var s model.Seller
	err := r.db.WithContext(ctx).Where(cond, arg).First(&s).Error
	if isNotFound(err) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sellerGormRepository) List(ctx context.Context) ([]model.Seller, error) {
	sellers := []model.Seller{}
	if err := r.db.WithContext(ctx).Order("shop_name asc").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerGormRepository) SearchByShopName(ctx context.Context, q string, limit int) ([]model.Seller, error) {
	sellers := []model.Seller{}
	err := r.db.WithContext(ctx).
		Where(likeClause(r.db, "shop_name"), likePattern(q)).
		Order("id asc").
		Limit(limit).
		Find(&sellers).Error
	if err != nil {
		return nil, err
	}
	return sellers, nil
}
