package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	buyer := g.Roles(model.RoleBuyer)
	e.POST("/buyer/orders", h.place, buyer...)
	e.GET("/buyer/orders", h.listForBuyer, buyer...)
	e.PATCH("/buyer/orders/:id/cancel", h.cancel, buyer...)

	seller := g.Roles(model.RoleSeller)
	e.GET("/sellerOrders", h.listForSeller, seller...)
	e.GET("/seller/orders", h.listForSeller, seller...)
	e.GET("/seller/orders/ready-for-delivery", h.listReady, seller...)

	manager := g.Roles(model.RoleSeller, model.RoleAdmin)
	e.PATCH("/seller/orders/:id/confirm-payment", h.confirmPayment, manager...)
	e.PATCH("/singleOrder/assign-delivery/:id", h.assignDelivery, manager...)
	e.PATCH("/orders/:id/assign-delivery", h.assignDelivery, manager...)

	delivery := g.Roles(model.RoleDelivery)
	e.GET("/delivery/orders", h.listForDelivery, delivery...)
	e.PATCH("/delivery/orders/:id/delivered", h.markDelivered, delivery...)
}

type placeOrderRequest struct {
	ProductID       int64  `json:"product_id" validate:"required,gt=0"`
	Quantity        int64  `json:"quantity" validate:"required,gte=1"`
	ShippingAddress string `json:"shipping_address" validate:"required,max=512"`
	SubcityID       *int64 `json:"subcity_id" validate:"omitempty,gt=0"`
}

type orderMessageResponse struct {
	Message string      `json:"message"`
	Order   model.Order `json:"order"`
}

func (h *OrderHandler) place(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req placeOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	o, err := h.uc.PlaceOrder(c.Request().Context(), actor, usecase.PlaceOrderInput{
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
		SubcityID:       req.SubcityID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) listForBuyer(c echo.Context) error {
	return h.listWith(c, h.uc.ListForBuyer)
}

func (h *OrderHandler) listForSeller(c echo.Context) error {
	return h.listWith(c, h.uc.ListForSeller)
}

func (h *OrderHandler) listReady(c echo.Context) error {
	return h.listWith(c, h.uc.ListReadyForDelivery)
}

func (h *OrderHandler) listForDelivery(c echo.Context) error {
	return h.listWith(c, h.uc.ListForDeliveryPerson)
}

func (h *OrderHandler) listWith(c echo.Context, fn func(ctx context.Context, actor usecase.Actor) ([]model.Order, error)) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	orders, err := fn(c.Request().Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	return h.transition(c, h.uc.Cancel, "Order cancelled.")
}

func (h *OrderHandler) confirmPayment(c echo.Context) error {
	return h.transition(c, h.uc.ConfirmPayment, "Payment confirmed.")
}

func (h *OrderHandler) markDelivered(c echo.Context) error {
	return h.transition(c, h.uc.MarkDelivered, "Order delivered.")
}

func (h *OrderHandler) transition(
	c echo.Context,
	fn func(ctx context.Context, actor usecase.Actor, orderID int64) (model.Order, error),
	msg string,
) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgOrderNotFound})
	}

	o, err := fn(c.Request().Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderMessageResponse{Message: msg, Order: o})
}

// assignDeliveryRequest accepts both spellings used by clients.
type assignDeliveryRequest struct {
	DeliveryPersonID      flexibleID `json:"deliveryPersonId"`
	DeliveryPersonIDSnake flexibleID `json:"delivery_person_id"`
}

func (r assignDeliveryRequest) id() int64 {
	if r.DeliveryPersonID > 0 {
		return int64(r.DeliveryPersonID)
	}
	return int64(r.DeliveryPersonIDSnake)
}

func (h *OrderHandler) assignDelivery(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	// a malformed body counts as a missing id
	var req assignDeliveryRequest
	_ = c.Bind(&req)

	orderID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	o, err := h.uc.AssignDelivery(c.Request().Context(), actor, orderID, req.id())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderMessageResponse{Message: "Delivery person assigned.", Order: o})
}

// flexibleID decodes a JSON number or a numeric string. Anything else is 0.
type flexibleID int64

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	n := json.Number(b)
	v, err := n.Int64()
	if err != nil || v < 0 {
		*f = 0
		return nil
	}
	*f = flexibleID(v)
	return nil
}
