package usecase

import (
	"context"
	"errors"
	"net/http"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type FavoriteUsecase struct {
	favorites repo.FavoriteRepository
	products  repo.ProductRepository
}

func NewFavoriteUsecase(favorites repo.FavoriteRepository, products repo.ProductRepository) *FavoriteUsecase {
	return &FavoriteUsecase{favorites: favorites, products: products}
}

func (u *FavoriteUsecase) List(ctx context.Context, actor Actor) ([]model.Favorite, error) {
	favs, err := u.favorites.ListByBuyerID(ctx, actor.UserID)
	if err != nil {
		return nil, internal("list favorites", err)
	}
	return favs, nil
}

func (u *FavoriteUsecase) Add(ctx context.Context, actor Actor, productID int64) (model.Favorite, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Favorite{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		return model.Favorite{}, internal("find product", err)
	}
	if !p.IsActive {
		return model.Favorite{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}

	fav, err := u.favorites.Add(ctx, actor.UserID, productID)
	if errors.Is(err, repo.ErrConflict) {
		return model.Favorite{}, NewHTTPError(http.StatusBadRequest, MsgAlreadyFavorite)
	}
	if err != nil {
		return model.Favorite{}, internal("add favorite", err)
	}
	fav.Product = &p
	return fav, nil
}

func (u *FavoriteUsecase) Remove(ctx context.Context, actor Actor, productID int64) error {
	err := u.favorites.Remove(ctx, actor.UserID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, MsgFavoriteNotFound)
	}
	if err != nil {
		return internal("remove favorite", err)
	}
	return nil
}
