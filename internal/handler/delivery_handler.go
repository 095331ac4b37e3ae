package handler

import (
	"net/http"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

func (h *DeliveryHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/deliveryPersons", h.listPersons, g.Roles(model.RoleSeller, model.RoleAdmin)...)

	delivery := g.Roles(model.RoleDelivery)
	e.GET("/delivery/profile", h.getProfile, delivery...)
	e.POST("/delivery/profile", h.saveProfile, delivery...)
	e.PATCH("/delivery/toggle-availability", h.toggle, delivery...)
}

func (h *DeliveryHandler) listPersons(c echo.Context) error {
	persons, err := h.uc.ListDeliveryPersons(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, persons)
}

func (h *DeliveryHandler) getProfile(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.GetProfile(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type saveDeliveryProfileRequest struct {
	VehicleType string `json:"vehicle_type" validate:"required,max=50"`
	PlateNumber string `json:"plate_number" validate:"max=30"`
}

func (h *DeliveryHandler) saveProfile(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req saveDeliveryProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	p, err := h.uc.SaveProfile(c.Request().Context(), actor, usecase.SaveDeliveryProfileInput{
		VehicleType: req.VehicleType,
		PlateNumber: req.PlateNumber,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *DeliveryHandler) toggle(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.ToggleAvailability(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
