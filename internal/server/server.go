package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"sebetamart/internal/config"
	"sebetamart/internal/handler"
	"sebetamart/internal/infra/jwt"
	infraRepo "sebetamart/internal/infra/repository"
	"sebetamart/internal/infra/storage"
	"sebetamart/internal/logging"
	"sebetamart/internal/middleware"
	"sebetamart/internal/usecase"
	auth "sebetamart/internal/usecase/auth_usecase"
	"sebetamart/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// New wires repositories, use cases and handlers on top of gormDB and
// returns the ready-to-serve echo instance.
func New(cfg config.Config, gormDB *gorm.DB, logger *zap.Logger) (*echo.Echo, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	images, err := storage.NewLocalImageStore(cfg.UploadDir, cfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	// repositories
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	sellerRepo := infraRepo.NewSellerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	profileRepo := infraRepo.NewDeliveryProfileGormRepository(gormDB)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(gormDB)
	subcityRepo := infraRepo.NewSubcityGormRepository(gormDB)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	issuer := jwt.NewIssuer(cfg.JWTSecret, cfg.SessionTTL)

	// use cases
	registerUC := auth.NewRegisterUserUsecase(userRepo, auth.NewBcryptPasswordHasher(cfg.BcryptCost))
	loginUC := auth.NewLoginUsecase(userRepo, auth.NewBcryptPasswordVerifier(), issuer, auth.SystemClock{})
	currentUC := auth.NewCurrentUserUsecase(userRepo)

	productUC := usecase.NewProductUsecase(productRepo, sellerRepo, images)
	sellerUC := usecase.NewSellerUsecase(sellerRepo, subcityRepo, productRepo, orderRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, sellerRepo, userRepo, subcityRepo)
	deliveryUC := usecase.NewDeliveryUsecase(profileRepo, userRepo)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, productRepo)
	searchUC := usecase.NewSearchUsecase(productRepo, sellerRepo)
	subcityUC := usecase.NewSubcityUsecase(subcityRepo)
	adminUC := usecase.NewAdminUsecase(userRepo, orderRepo, auditRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.Validator = validator.New()
	e.HTTPErrorHandler = errorHandler

	e.Use(logging.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FEURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	// multipart overhead on top of the image itself
	e.Use(echomw.BodyLimit(fmt.Sprintf("%dB", cfg.MaxUploadBytes+(1<<20))))

	e.Static(storage.PublicPrefix, cfg.UploadDir)

	registerRoutes(e, routes{
		guards:   handler.NewGuards(middleware.SessionAuth(issuer, userRepo)),
		health:   handler.NewHealthHandler(sqlDB),
		auth:     handler.NewAuthHandler(registerUC, loginUC, currentUC, cfg.CookieSecure),
		products: handler.NewProductHandler(productUC),
		sellers:  handler.NewSellerHandler(sellerUC),
		orders:   handler.NewOrderHandler(orderUC),
		delivery: handler.NewDeliveryHandler(deliveryUC),
		favorite: handler.NewFavoriteHandler(favoriteUC),
		catalog:  handler.NewCatalogHandler(searchUC, subcityUC),
		admin:    handler.NewAdminHandler(adminUC),
	})

	return e, nil
}

// errorHandler keeps every error body in the {"message": ...} shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Internal server error."

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	} else {
		logging.FromContext(c.Request().Context()).Error("unhandled error", zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, handler.MessageResponse{Message: msg})
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, e *echo.Echo, addr string, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down http server")
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("echo shutdown: %w", err)
	}
	return nil
}
