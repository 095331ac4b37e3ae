package server

import (
	"sebetamart/internal/handler"

	"github.com/labstack/echo/v4"
)

type routes struct {
	guards   handler.Guards
	health   *handler.HealthHandler
	auth     *handler.AuthHandler
	products *handler.ProductHandler
	sellers  *handler.SellerHandler
	orders   *handler.OrderHandler
	delivery *handler.DeliveryHandler
	favorite *handler.FavoriteHandler
	catalog  *handler.CatalogHandler
	admin    *handler.AdminHandler
}

func registerRoutes(e *echo.Echo, r routes) {
	r.health.RegisterRoutes(e)
	r.catalog.RegisterRoutes(e)
	r.auth.RegisterRoutes(e, r.guards)
	r.products.RegisterRoutes(e, r.guards)
	r.sellers.RegisterRoutes(e, r.guards)
	r.orders.RegisterRoutes(e, r.guards)
	r.delivery.RegisterRoutes(e, r.guards)
	r.favorite.RegisterRoutes(e, r.guards)
	r.admin.RegisterRoutes(e, r.guards)
}
