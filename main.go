package main

import (
	"log"
	"os"

	api "safenest-backend/cmd/api"
	"safenest-backend/internal/device/domain"
	"safenest-backend/internal/device/repository"
	"safenest-backend/internal/device/usecase"
	"safenest-backend/pkg/config"
	"safenest-backend/pkg/database"
	"safenest-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(os.Getenv("DEBUG") != "")
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&domain.Device{}, &domain.Child{}, &domain.App{}, &domain.AppSelection{}, &domain.DeviceJob{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if cfg.DeviceJWTSecret == "" {
		// claim and postinstall will reject everything until this is fixed
		zapLogger.Error("DEVICE_JWT_SECRET is not configured")
	}

	// Initialize repositories (dependency injection)
	deviceRepo := repository.NewDeviceRepository(db)
	childRepo := repository.NewChildRepository(db)
	appRepo := repository.NewAppRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	jobRepo := repository.NewJobRepository(db)

	// Initialize token service and use case
	tokens := usecase.NewTokenService(cfg.DeviceJWTSecret, cfg.DeviceTokenExpiry)
	deviceUsecaseInstance := usecase.NewDeviceUsecase(deviceRepo, childRepo, appRepo, selectionRepo, jobRepo, tokens, zapLogger)

	// Initialize HTTP handler
	handler := api.NewHandler(deviceUsecaseInstance, tokens, cfg, zapLogger)

	// Start server
	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
