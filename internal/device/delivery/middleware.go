package delivery

import (
	"errors"
	"net/http"
	"strings"

	"safenest-backend/internal/device/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextDeviceCode is the gin context key holding the verified device code.
const ContextDeviceCode = "deviceCode"

// DeviceAuthMiddleware verifies the bearer device token and stores the device
// code on the context. Every rejection is a 401 with a generic body; the
// internal reason code is only logged.
func DeviceAuthMiddleware(tokens *usecase.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		deviceCode, err := tokens.Verify(parts[1])
		if err != nil {
			var tokenErr *usecase.TokenError
			if errors.As(err, &tokenErr) {
				if tokenErr.Reason == usecase.ReasonNoSecret {
					// operators alert on this reason; the caller still sees a 401
					logger.Error("device token rejected", zap.String("reason", tokenErr.Reason))
				} else {
					logger.Warn("device token rejected",
						zap.String("reason", tokenErr.Reason), zap.Error(tokenErr.Err))
				}
			} else {
				logger.Warn("device token rejected", zap.Error(err))
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired device token"})
			c.Abort()
			return
		}

		c.Set(ContextDeviceCode, deviceCode)
		c.Next()
	}
}
