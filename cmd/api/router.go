package api

import (
	"net/http"

	"safenest-backend/internal/device/delivery"
	"safenest-backend/internal/device/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(r *gin.Engine, deviceHandler *delivery.DeviceHandler, tokens *usecase.TokenService, logger *zap.Logger) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		devices := api.Group("/devices")
		{
			// Pairing: exchanges a device code + secret for a device token
			devices.POST("/claim", deviceHandler.Claim)

			// Everything else requires a valid device token
			authed := devices.Group("")
			authed.Use(delivery.DeviceAuthMiddleware(tokens, logger))
			{
				authed.POST("/postinstall", deviceHandler.PostInstall)
				authed.GET("/me", deviceHandler.Me)
				authed.GET("/jobs/next", deviceHandler.NextJob)
				authed.POST("/jobs/:id/complete", deviceHandler.CompleteJob)
			}
		}
	}
}
