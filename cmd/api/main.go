package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sebetamart/internal/config"
	"sebetamart/internal/infra/db"
	infraRepo "sebetamart/internal/infra/repository"
	"sebetamart/internal/logging"
	"sebetamart/internal/server"
	"sebetamart/internal/usecase"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.GoEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("api stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	if err := usecase.NewSubcityUsecase(infraRepo.NewSubcityGormRepository(gormDB)).Seed(ctx); err != nil {
		return err
	}

	e, err := server.New(cfg, gormDB, logger)
	if err != nil {
		return err
	}
	return server.Run(ctx, e, cfg.Addr(), logger)
}
