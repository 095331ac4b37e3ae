package handler

import (
	"errors"
	"net/http"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/productlist", h.list)
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/products/seller/:id", h.listBySeller)

	seller := g.Roles(model.RoleSeller)
	e.POST("/products", h.create, seller...)
	e.PUT("/products/:id", h.update, seller...)
	e.DELETE("/products/:id", h.delete, seller...)
}

func (h *ProductHandler) list(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return badRequest(c, err.Error())
	}
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return badRequest(c, err.Error())
	}
	minPrice, err := queryInt64Ptr(c, "min_price")
	if err != nil {
		return badRequest(c, err.Error())
	}
	maxPrice, err := queryInt64Ptr(c, "max_price")
	if err != nil {
		return badRequest(c, err.Error())
	}

	out, err := h.uc.ListPublicProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:     page,
		Limit:    limit,
		Q:        c.QueryParam("q"),
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgProductNotFound})
	}

	p, err := h.uc.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) listBySeller(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgSellerNotFound})
	}

	items, err := h.uc.ListBySeller(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// multipart form; the image part is optional
type createProductRequest struct {
	Name        string `form:"name" validate:"required,max=255"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"max=100"`
	Price       int64  `form:"price" validate:"gte=0"`
	Stock       int64  `form:"stock" validate:"gte=0"`
}

func (h *ProductHandler) create(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	image, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		image = nil
	} else if err != nil {
		return badRequest(c, "Invalid image upload.")
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), actor, usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       image,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

type updateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	Stock       *int64  `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active"`
}

func (h *ProductHandler) update(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgProductNotFound})
	}

	var req updateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), actor, id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgProductNotFound})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), actor, id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted."})
}
