package handler

import (
	"net/http"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SellerHandler struct {
	uc *usecase.SellerUsecase
}

func NewSellerHandler(uc *usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

func (h *SellerHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/sellers", h.list)
	e.GET("/sellers/:id", h.get)

	seller := g.Roles(model.RoleSeller)
	e.POST("/sellers", h.create, seller...)
	e.GET("/seller/profile", h.me, seller...)
	e.GET("/seller/dashboard", h.dashboard, seller...)
}

func (h *SellerHandler) list(c echo.Context) error {
	sellers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sellers)
}

func (h *SellerHandler) get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgSellerNotFound})
	}
	s, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

type createSellerRequest struct {
	ShopName    string `json:"shop_name" validate:"required,max=255"`
	Description string `json:"description"`
	Phone       string `json:"phone" validate:"max=30"`
	SubcityID   *int64 `json:"subcity_id" validate:"omitempty,gt=0"`
}

func (h *SellerHandler) create(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createSellerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	s, err := h.uc.Create(c.Request().Context(), actor, usecase.CreateSellerInput{
		ShopName:    req.ShopName,
		Description: req.Description,
		Phone:       req.Phone,
		SubcityID:   req.SubcityID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SellerHandler) me(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	s, err := h.uc.Me(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SellerHandler) dashboard(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
