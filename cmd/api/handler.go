package api

import (
	"safenest-backend/internal/device/delivery"
	"safenest-backend/internal/device/usecase"
	"safenest-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	deviceUsecase usecase.DeviceUsecase
	tokens        *usecase.TokenService
	config        *config.Config
	logger        *zap.Logger
}

func NewHandler(deviceUc usecase.DeviceUsecase, tokens *usecase.TokenService, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		deviceUsecase: deviceUc,
		tokens:        tokens,
		config:        cfg,
		logger:        logger,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	deviceHandler := delivery.NewDeviceHandler(h.deviceUsecase, h.logger)
	SetupRoutes(r, deviceHandler, h.tokens, h.logger)

	return r.Run(addr)
}
