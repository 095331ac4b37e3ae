package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/logging"
	"sebetamart/internal/middleware"
	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, MessageResponse{Message: msg})
}

// writeError answers expected failures with their own status and message.
// Anything else is logged and hidden behind a generic 500.
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, MessageResponse{Message: he.Message})
	}

	logging.FromContext(c.Request().Context()).Error("unhandled error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error."})
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}
	if err := c.Validate(req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// actorFrom reads the identity SessionAuth stored on the context.
func actorFrom(c echo.Context) (usecase.Actor, bool) {
	id, ok := c.Get(middleware.CtxUserIDKey).(int64)
	if !ok || id <= 0 {
		return usecase.Actor{}, false
	}
	role, _ := c.Get(middleware.CtxUserRoleKey).(model.Role)
	return usecase.Actor{UserID: id, Role: role}, true
}

var errNoActor = usecase.NewHTTPError(http.StatusUnauthorized, "Unauthorized.")

func mustActor(c echo.Context) (usecase.Actor, error) {
	a, ok := actorFrom(c)
	if !ok {
		return usecase.Actor{}, errNoActor
	}
	return a, nil
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}

func queryInt64Ptr(c echo.Context, name string) (*int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &n, nil
}

func queryTimePtr(c echo.Context, name string) (*time.Time, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	tm, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &tm, nil
}
