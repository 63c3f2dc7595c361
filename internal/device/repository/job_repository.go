package repository

import (
	"errors"
	"time"

	"safenest-backend/internal/device/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// jobRepository implements JobRepository using GORM
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new instance of jobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{
		db: db,
	}
}

func (r *jobRepository) Create(job *domain.DeviceJob) error {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.Status == "" {
		job.Status = domain.JobStatusQueued
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()
	return r.db.Create(job).Error
}

func (r *jobRepository) NextQueued(deviceID string) (*domain.DeviceJob, error) {
	var job domain.DeviceJob
	err := r.db.Where("device_id = ? AND status = ?", deviceID, domain.JobStatusQueued).
		Order("created_at ASC").First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.UpdateStatus(job.ID, domain.JobStatusDelivered); err != nil {
		return nil, err
	}
	job.Status = domain.JobStatusDelivered
	return &job, nil
}

func (r *jobRepository) FindByID(id string) (*domain.DeviceJob, error) {
	var job domain.DeviceJob
	err := r.db.Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&domain.DeviceJob{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}
