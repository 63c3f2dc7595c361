package repository

import "safenest-backend/internal/device/domain"

// DeviceRepository defines persistence operations for devices
type DeviceRepository interface {
	// FindByCode looks up a device by its pairing code. Returns (nil, nil)
	// when no row matches.
	FindByCode(code string) (*domain.Device, error)
	// LinkChild points the device at a child and bumps updated_at
	LinkChild(deviceID, childID string) error
	// TouchClaimed records a successful token claim
	TouchClaimed(deviceID string) error
}

// ChildRepository defines read access to children
type ChildRepository interface {
	FindByID(id string) (*domain.Child, error)
}

// AppRepository defines read access to the app catalog
type AppRepository interface {
	FindByIDs(ids []string) ([]*domain.App, error)
}

// SelectionRepository manages the per-child enabled-app set
type SelectionRepository interface {
	DeleteByChild(childID string) error
	CreateBatch(selections []*domain.AppSelection) error
	FindByChild(childID string) ([]*domain.AppSelection, error)
}

// JobRepository manages the device job queue
type JobRepository interface {
	Create(job *domain.DeviceJob) error
	// NextQueued returns the oldest queued job for a device and marks it
	// delivered. Returns (nil, nil) when the queue is empty.
	NextQueued(deviceID string) (*domain.DeviceJob, error)
	FindByID(id string) (*domain.DeviceJob, error)
	UpdateStatus(id, status string) error
}
