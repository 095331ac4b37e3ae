package handler

import (
	"net/http"

	"sebetamart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the public lookups: search and sub-cities.
type CatalogHandler struct {
	search    *usecase.SearchUsecase
	subcities *usecase.SubcityUsecase
}

func NewCatalogHandler(search *usecase.SearchUsecase, subcities *usecase.SubcityUsecase) *CatalogHandler {
	return &CatalogHandler{search: search, subcities: subcities}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/search", h.searchAll)
	e.GET("/subcities", h.listSubcities)
}

func (h *CatalogHandler) searchAll(c echo.Context) error {
	out, err := h.search.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listSubcities(c echo.Context) error {
	items, err := h.subcities.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
