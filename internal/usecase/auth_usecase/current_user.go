package auth

import (
	"context"
	"errors"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

type CurrentUserUsecase struct {
	userRepo repository.UserRepository
}

func NewCurrentUserUsecase(userRepo repository.UserRepository) *CurrentUserUsecase {
	return &CurrentUserUsecase{userRepo: userRepo}
}

// Execute returns the user behind the session.
func (u *CurrentUserUsecase) Execute(ctx context.Context, userID int64) (model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return *user, nil
}
