package middleware

import (
	"errors"
	"net/http"
	"strings"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/infra/jwt"
	"sebetamart/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookieName = "token"

	CtxUserIDKey   = "user_id"   // int64
	CtxUserRoleKey = "user_role" // model.Role
)

// TokenParser verifies a session token.
type TokenParser interface {
	Parse(raw string) (jwt.Claims, error)
}

type messageResponse struct {
	Message string `json:"message"`
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized."})
}

// SessionAuth resolves the caller from the session cookie (or a Bearer
// header) on every request. The token must match the user's current
// token_version and the account must be active.
func SessionAuth(tokens TokenParser, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := rawToken(c)
			if raw == "" {
				return unauthorized(c)
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				return unauthorized(c)
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if errors.Is(err, repository.ErrNotFound) || (err == nil && user == nil) {
				return unauthorized(c)
			}
			if err != nil {
				return err
			}

			// force-logout bumps token_version
			if user.TokenVersion != claims.TokenVersion {
				return unauthorized(c)
			}
			if !user.IsActive {
				return c.JSON(http.StatusForbidden, messageResponse{Message: "Account is disabled."})
			}

			// the role in the DB wins over the one in the token
			c.Set(CtxUserIDKey, user.ID)
			c.Set(CtxUserRoleKey, user.Role)

			return next(c)
		}
	}
}

func rawToken(c echo.Context) string {
	if ck, err := c.Cookie(SessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	authz := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxUserRoleKey).(model.Role)
			if !ok || role == "" {
				return unauthorized(c)
			}
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Forbidden."})
		}
	}
}
