package handler

import (
	"net/http"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FavoriteHandler struct {
	uc *usecase.FavoriteUsecase
}

func NewFavoriteHandler(uc *usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

func (h *FavoriteHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	buyer := g.Roles(model.RoleBuyer)
	e.GET("/buyer/favorites", h.list, buyer...)
	e.POST("/buyer/favorites", h.add, buyer...)
	e.DELETE("/buyer/favorites/:productId", h.remove, buyer...)
}

func (h *FavoriteHandler) list(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	favs, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, favs)
}

type addFavoriteRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

func (h *FavoriteHandler) add(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req addFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	fav, err := h.uc.Add(c.Request().Context(), actor, req.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, fav)
}

func (h *FavoriteHandler) remove(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgFavoriteNotFound})
	}

	if err := h.uc.Remove(c.Request().Context(), actor, productID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Removed from favorites."})
}
