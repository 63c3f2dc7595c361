package usecase

import (
	"errors"

	"safenest-backend/internal/device/domain"
	"safenest-backend/internal/device/dto"
)

// Sentinel errors mapped to HTTP statuses by the delivery layer.
var (
	// ErrDeviceNotFound covers both "no such device" and a validly-signed
	// token whose device code no longer resolves; the two are not
	// distinguished to the caller.
	ErrDeviceNotFound = errors.New("device not found")
	ErrLinkDevice     = errors.New("failed to link device")
	ErrQueueJob       = errors.New("failed to queue job")
	ErrInvalidPairing = errors.New("invalid device code or pairing secret")
	ErrJobNotFound    = errors.New("job not found")
	ErrBadJobStatus   = errors.New("invalid job status")
)

// DeviceUsecase defines the device-facing provisioning operations
type DeviceUsecase interface {
	// PostInstall links the device to a child, replaces the child's
	// app-selection set and queues a POST_INSTALL job for the device agent
	PostInstall(in *dto.PostInstallInput) error
	// Claim exchanges a device code + pairing secret for a signed device token
	Claim(req *dto.ClaimRequest) (*dto.ClaimResponse, error)
	// GetByCode returns the device row for a verified device code
	GetByCode(deviceCode string) (*domain.Device, error)
	// NextJob pops the oldest queued job for the device, or nil when idle
	NextJob(deviceCode string) (*domain.DeviceJob, error)
	// CompleteJob transitions a delivered job to completed or failed
	CompleteJob(deviceCode, jobID, status string) error
}
