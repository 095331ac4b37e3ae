package handler

import (
	"net/http"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/repository"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	admin := e.Group("/admin", g.Roles(model.RoleAdmin)...)

	admin.GET("/users", h.listUsers)
	admin.PATCH("/users/:id/active", h.setActive)
	admin.POST("/users/:id/force-logout", h.forceLogout)
	admin.GET("/orders", h.listOrders)
	admin.GET("/audit-logs", h.listAuditLogs)
}

func (h *AdminHandler) listUsers(c echo.Context) error {
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		return badRequest(c, err.Error())
	}
	users, err := h.uc.ListUsers(c.Request().Context(), c.QueryParam("role"), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *AdminHandler) setActive(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgUserNotFound})
	}

	var req setActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.SetUserActive(c.Request().Context(), actor, userID, *req.IsActive)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) forceLogout(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: usecase.MsgUserNotFound})
	}

	out, err := h.uc.ForceLogout(c.Request().Context(), actor, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) listOrders(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return badRequest(c, err.Error())
	}
	limit, err := queryInt(c, "limit", 50)
	if err != nil {
		return badRequest(c, err.Error())
	}
	sellerID, err := queryInt64Ptr(c, "seller_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	from, err := queryTimePtr(c, "from")
	if err != nil {
		return badRequest(c, err.Error())
	}
	to, err := queryTimePtr(c, "to")
	if err != nil {
		return badRequest(c, err.Error())
	}

	out, err := h.uc.ListOrders(c.Request().Context(), repository.AdminOrderListFilter{
		Page:          page,
		Limit:         limit,
		Status:        c.QueryParam("status"),
		PaymentStatus: c.QueryParam("payment_status"),
		SellerID:      sellerID,
		From:          from,
		To:            to,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminHandler) listAuditLogs(c echo.Context) error {
	var f repository.AuditLogFilter

	actorID, err := queryInt64Ptr(c, "actor_user_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	resourceID, err := queryInt64Ptr(c, "resource_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	from, err := queryTimePtr(c, "from")
	if err != nil {
		return badRequest(c, err.Error())
	}
	to, err := queryTimePtr(c, "to")
	if err != nil {
		return badRequest(c, err.Error())
	}
	if f.Limit, err = queryInt(c, "limit", 50); err != nil {
		return badRequest(c, err.Error())
	}
	if f.Offset, err = queryInt(c, "offset", 0); err != nil {
		return badRequest(c, err.Error())
	}

	f.ActorUserID = actorID
	f.ResourceID = resourceID
	f.CreatedFrom = from
	f.CreatedTo = to
	if v := c.QueryParam("action"); v != "" {
		a := model.AuditAction(v)
		f.Action = &a
	}
	if v := c.QueryParam("resource_type"); v != "" {
		rt := model.AuditResourceType(v)
		f.ResourceType = &rt
	}

	logs, err := h.uc.ListAuditLogs(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
