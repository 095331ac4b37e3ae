package repository

import (
	"context"

	"sebetamart/internal/domain/model"
)

type SubcityRepository interface {
	List(ctx context.Context) ([]model.Subcity, error)
	FindByID(ctx context.Context, id int64) (model.Subcity, error)
	// EnsureSeeded inserts the names that are missing.
	EnsureSeeded(ctx context.Context, names []string) error
}
