package handler

import (
	"sebetamart/internal/domain/model"
	"sebetamart/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Guards builds the middleware chains protected routes are registered with.
type Guards struct {
	session echo.MiddlewareFunc
}

func NewGuards(session echo.MiddlewareFunc) Guards {
	return Guards{session: session}
}

// Session requires any signed-in user.
func (g Guards) Session() []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.session}
}

// Roles requires a signed-in user with one of the roles.
func (g Guards) Roles(roles ...model.Role) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{g.session, middleware.RequireRole(roles...)}
}
