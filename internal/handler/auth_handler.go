package handler

import (
	"errors"
	"net/http"
	"time"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/middleware"
	auth "sebetamart/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	registerUC   *auth.RegisterUserUsecase
	loginUC      *auth.LoginUsecase
	currentUC    *auth.CurrentUserUsecase
	cookieSecure bool
}

func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	currentUC *auth.CurrentUserUsecase,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		registerUC:   registerUC,
		loginUC:      loginUC,
		currentUC:    currentUC,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
	e.POST("/auth/logout", h.logout)
	e.GET("/auth/me", h.me, g.Session()...)
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=30"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=buyer seller delivery"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User model.User `json:"user"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidName):
			return badRequest(c, "name is required.")
		case errors.Is(err, auth.ErrInvalidEmailFormat):
			return badRequest(c, "email must be a valid email.")
		case errors.Is(err, auth.ErrPasswordTooShort):
			return badRequest(c, "password must be at least 8 characters.")
		case errors.Is(err, auth.ErrWeakPassword):
			return badRequest(c, "password is too weak.")
		case errors.Is(err, auth.ErrRoleNotAllowed):
			return badRequest(c, "role must be one of: buyer, seller, delivery.")
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return c.JSON(http.StatusConflict, MessageResponse{Message: "Email already registered."})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, userResponse{User: out.User})
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, side, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Invalid email or password."})
		case errors.Is(err, auth.ErrUserInactive):
			return c.JSON(http.StatusForbidden, MessageResponse{Message: "Account is disabled."})
		default:
			return writeError(c, err)
		}
	}

	h.setSessionCookie(c, side.Token, side.ExpiresAt)
	return c.JSON(http.StatusOK, userResponse{User: out.User})
}

func (h *AuthHandler) logout(c echo.Context) error {
	h.setSessionCookie(c, "", time.Unix(0, 0))
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out."})
}

func (h *AuthHandler) me(c echo.Context) error {
	actor, err := mustActor(c)
	if err != nil {
		return writeError(c, err)
	}

	user, err := h.currentUC.Execute(c.Request().Context(), actor.UserID)
	if errors.Is(err, auth.ErrUserNotFound) {
		return c.JSON(http.StatusUnauthorized, MessageResponse{Message: "Unauthorized."})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// setSessionCookie writes the HTTP-only session cookie; an empty token clears it.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expires time.Time) {
	ck := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		ck.MaxAge = -1
	} else {
		ck.MaxAge = int(time.Until(expires).Seconds())
	}
	c.SetCookie(ck)
}
