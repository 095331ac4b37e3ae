package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"sebetamart/internal/domain/model"
	repo "sebetamart/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
	sellers  repo.SellerRepository
	images   repo.ImageStore
}

func NewProductUsecase(
	products repo.ProductRepository,
	sellers repo.SellerRepository,
	images repo.ImageStore,
) *ProductUsecase {
	return &ProductUsecase{
		products: products,
		sellers:  sellers,
		images:   images,
	}
}

// GET /productlist
type ListProductsInput struct {
	Page     int
	Limit    int
	Q        string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.products.ListPublic(ctx, repo.ProductListQuery{
		Page:     in.Page,
		Limit:    in.Limit,
		Q:        strings.TrimSpace(in.Q),
		Category: strings.TrimSpace(in.Category),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		Sort:     in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, internal("list products", err)
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		return model.Product{}, internal("find product", err)
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	return p, nil
}

// ListBySeller returns the active products of one shop.
func (u *ProductUsecase) ListBySeller(ctx context.Context, sellerID int64) ([]model.Product, error) {
	if _, err := u.sellers.FindByID(ctx, sellerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, MsgSellerNotFound)
		}
		return nil, internal("find seller", err)
	}

	items, err := u.products.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, internal("list seller products", err)
	}
	return items, nil
}

type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       int64
	Stock       int64
	Image       *multipart.FileHeader
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, actor Actor, in CreateProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required.")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be 0 or more.")
	}
	if in.Stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be 0 or more.")
	}

	seller, err := findSellerOf(ctx, u.sellers, actor)
	if err != nil {
		return model.Product{}, err
	}

	var imageURL string
	if in.Image != nil {
		imageURL, err = u.images.Save(ctx, in.Image)
		switch {
		case errors.Is(err, repo.ErrImageTooLarge):
			return model.Product{}, NewHTTPError(http.StatusBadRequest, MsgImageTooLarge)
		case errors.Is(err, repo.ErrUnsupportedImage):
			return model.Product{}, NewHTTPError(http.StatusBadRequest, MsgImageUnsupported)
		case err != nil:
			return model.Product{}, internal("save image", err)
		}
	}

	p, err := u.products.Create(ctx, model.Product{
		SellerID:    seller.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    imageURL,
		IsActive:    true,
	})
	if err != nil {
		if imageURL != "" {
			_ = u.images.Remove(ctx, imageURL)
		}
		return model.Product{}, internal("create product", err)
	}
	return p, nil
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Category    *string
	Price       *int64
	Stock       *int64
	IsActive    *bool
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, actor Actor, productID int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.ownedProduct(ctx, actor, productID)
	if err != nil {
		return model.Product{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required.")
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be 0 or more.")
		}
		p.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be 0 or more.")
		}
		p.Stock = *in.Stock
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	if err := u.products.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
		}
		return model.Product{}, internal("update product", err)
	}
	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, actor Actor, productID int64) error {
	if _, err := u.ownedProduct(ctx, actor, productID); err != nil {
		return err
	}
	if err := u.products.SoftDelete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, MsgProductNotFound)
		}
		return internal("delete product", err)
	}
	return nil
}

// ownedProduct hides other shops' products behind 404.
func (u *ProductUsecase) ownedProduct(ctx context.Context, actor Actor, productID int64) (model.Product, error) {
	seller, err := findSellerOf(ctx, u.sellers, actor)
	if err != nil {
		return model.Product{}, err
	}
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	if err != nil {
		return model.Product{}, internal("find product", err)
	}
	if p.SellerID != seller.ID {
		return model.Product{}, NewHTTPError(http.StatusNotFound, MsgProductNotFound)
	}
	return p, nil
}

// findSellerOf resolves the shop owned by the calling seller.
func findSellerOf(ctx context.Context, sellers repo.SellerRepository, actor Actor) (*model.Seller, error) {
	s, err := sellers.FindByUserID(ctx, actor.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, MsgSellerProfileNotFound)
	}
	if err != nil {
		return nil, internal("find seller profile", err)
	}
	return s, nil
}
