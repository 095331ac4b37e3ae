package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type SellerUsecase struct {
	sellers   repo.SellerRepository
	subcities repo.SubcityRepository
	products  repo.ProductRepository
	orders    repo.OrderRepository
}

func NewSellerUsecase(
	sellers repo.SellerRepository,
	subcities repo.SubcityRepository,
	products repo.ProductRepository,
	orders repo.OrderRepository,
) *SellerUsecase {
	return &SellerUsecase{
		sellers:   sellers,
		subcities: subcities,
		products:  products,
		orders:    orders,
	}
}

func (u *SellerUsecase) List(ctx context.Context) ([]model.Seller, error) {
	sellers, err := u.sellers.List(ctx)
	if err != nil {
		return nil, internal("list sellers", err)
	}
	return sellers, nil
}

func (u *SellerUsecase) Get(ctx context.Context, sellerID int64) (*model.Seller, error) {
	s, err := u.sellers.FindByID(ctx, sellerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, MsgSellerNotFound)
	}
	if err != nil {
		return nil, internal("find seller", err)
	}
	return s, nil
}

type CreateSellerInput struct {
	ShopName    string
	Description string
	Phone       string
	SubcityID   *int64
}

// Create opens the caller's shop. A user owns at most one shop.
func (u *SellerUsecase) Create(ctx context.Context, actor Actor, in CreateSellerInput) (*model.Seller, error) {
	name := strings.TrimSpace(in.ShopName)
	if name == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "shop_name is required.")
	}

	if _, err := u.sellers.FindByUserID(ctx, actor.UserID); err == nil {
		return nil, NewHTTPError(http.StatusBadRequest, MsgSellerProfileExists)
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, internal("find seller profile", err)
	}

	if in.SubcityID != nil {
		if err := ensureSubcity(ctx, u.subcities, *in.SubcityID); err != nil {
			return nil, err
		}
	}

	s := &model.Seller{
		UserID:      actor.UserID,
		ShopName:    name,
		Description: in.Description,
		Phone:       strings.TrimSpace(in.Phone),
		SubcityID:   in.SubcityID,
	}
	if err := u.sellers.Create(ctx, s); err != nil {
		// lost a race with a concurrent create
		if errors.Is(err, repo.ErrConflict) {
			return nil, NewHTTPError(http.StatusBadRequest, MsgSellerProfileExists)
		}
		return nil, internal("create seller", err)
	}
	return s, nil
}

// Me returns the caller's own shop.
func (u *SellerUsecase) Me(ctx context.Context, actor Actor) (*model.Seller, error) {
	return findSellerOf(ctx, u.sellers, actor)
}

type SellerDashboard struct {
	Seller       *model.Seller `json:"seller"`
	ProductCount int           `json:"product_count"`
	repo.SellerOrderStats
}

func (u *SellerUsecase) Dashboard(ctx context.Context, actor Actor) (SellerDashboard, error) {
	seller, err := findSellerOf(ctx, u.sellers, actor)
	if err != nil {
		return SellerDashboard{}, err
	}

	products, err := u.products.ListBySellerID(ctx, seller.ID)
	if err != nil {
		return SellerDashboard{}, internal("list seller products", err)
	}
	stats, err := u.orders.SellerStats(ctx, seller.ID)
	if err != nil {
		return SellerDashboard{}, internal("seller stats", err)
	}

	return SellerDashboard{
		Seller:           seller,
		ProductCount:     len(products),
		SellerOrderStats: stats,
	}, nil
}

func ensureSubcity(ctx context.Context, subcities repo.SubcityRepository, id int64) error {
	_, err := subcities.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, MsgSubcityNotFound)
	}
	if err != nil {
		return internal("find subcity", err)
	}
	return nil
}
