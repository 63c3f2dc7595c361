package delivery

import (
	"errors"
	"net/http"

	"safenest-backend/internal/device/dto"
	"safenest-backend/internal/device/usecase"
	"safenest-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeviceHandler exposes the device provisioning endpoints
type DeviceHandler struct {
	deviceUsecase usecase.DeviceUsecase
	logger        *zap.Logger
}

// NewDeviceHandler creates a new instance of DeviceHandler
func NewDeviceHandler(deviceUsecase usecase.DeviceUsecase, logger *zap.Logger) *DeviceHandler {
	return &DeviceHandler{
		deviceUsecase: deviceUsecase,
		logger:        logger,
	}
}

// Claim handles POST /api/devices/claim
func (h *DeviceHandler) Claim(c *gin.Context) {
	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_code and pairing_secret are required"})
		return
	}

	resp, err := h.deviceUsecase.Claim(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPairing) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid device code or pairing secret"})
			return
		}
		h.logger.Error("device claim failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PostInstall handles POST /api/devices/postinstall
func (h *DeviceHandler) PostInstall(c *gin.Context) {
	in := normalizePostInstall(c)
	in.DeviceCode = c.GetString(ContextDeviceCode)

	if in.ChildID == "" {
		metrics.PostInstallRequests.WithLabelValues("missing_child").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "child_id is required"})
		return
	}

	if err := h.deviceUsecase.PostInstall(in); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDeviceNotFound):
			metrics.PostInstallRequests.WithLabelValues("device_not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		case errors.Is(err, usecase.ErrLinkDevice):
			metrics.PostInstallRequests.WithLabelValues("link_failed").Inc()
			h.logger.Error("postinstall link failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to link device"})
		case errors.Is(err, usecase.ErrQueueJob):
			metrics.PostInstallRequests.WithLabelValues("queue_failed").Inc()
			h.logger.Error("postinstall enqueue failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to queue job"})
		default:
			metrics.PostInstallRequests.WithLabelValues("error").Inc()
			h.logger.Error("postinstall failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}

	metrics.PostInstallRequests.WithLabelValues("ok").Inc()
	metrics.DeviceJobsQueued.Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me handles GET /api/devices/me
func (h *DeviceHandler) Me(c *gin.Context) {
	device, err := h.deviceUsecase.GetByCode(c.GetString(ContextDeviceCode))
	if err != nil {
		if errors.Is(err, usecase.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		h.logger.Error("device lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, device)
}

// NextJob handles GET /api/devices/jobs/next
func (h *DeviceHandler) NextJob(c *gin.Context) {
	job, err := h.deviceUsecase.NextJob(c.GetString(ContextDeviceCode))
	if err != nil {
		if errors.Is(err, usecase.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
			return
		}
		h.logger.Error("job poll failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	if job == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CompleteJob handles POST /api/devices/jobs/:id/complete
func (h *DeviceHandler) CompleteJob(c *gin.Context) {
	var req dto.CompleteJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	err := h.deviceUsecase.CompleteJob(c.GetString(ContextDeviceCode), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBadJobStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be completed or failed"})
		case errors.Is(err, usecase.ErrDeviceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		case errors.Is(err, usecase.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		default:
			h.logger.Error("job completion failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
