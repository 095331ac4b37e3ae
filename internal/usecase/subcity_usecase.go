package usecase

import (
	"context"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type SubcityUsecase struct {
	subcities repo.SubcityRepository
}

func NewSubcityUsecase(subcities repo.SubcityRepository) *SubcityUsecase {
	return &SubcityUsecase{subcities: subcities}
}

func (u *SubcityUsecase) List(ctx context.Context) ([]model.Subcity, error) {
	items, err := u.subcities.List(ctx)
	if err != nil {
		return nil, internal("list subcities", err)
	}
	return items, nil
}

// Seed makes sure the built-in sub-city list exists.
func (u *SubcityUsecase) Seed(ctx context.Context) error {
	if err := u.subcities.EnsureSeeded(ctx, model.DefaultSubcities); err != nil {
		return internal("seed subcities", err)
	}
	return nil
}
