package usecase

import (
	"fmt"

	"safenest-backend/internal/device/domain"

	"go.uber.org/zap"
)

// NextJob returns the oldest queued job for the token's device and marks it
// delivered, or nil when the queue is empty.
func (u *deviceUsecase) NextJob(deviceCode string) (*domain.DeviceJob, error) {
	device, err := u.GetByCode(deviceCode)
	if err != nil {
		return nil, err
	}
	return u.jobRepo.NextQueued(device.ID)
}

// CompleteJob transitions a job to completed or failed. The job must belong
// to the token's device; foreign job ids look the same as missing ones.
func (u *deviceUsecase) CompleteJob(deviceCode, jobID, status string) error {
	if status != domain.JobStatusCompleted && status != domain.JobStatusFailed {
		return ErrBadJobStatus
	}

	device, err := u.GetByCode(deviceCode)
	if err != nil {
		return err
	}

	job, err := u.jobRepo.FindByID(jobID)
	if err != nil {
		return fmt.Errorf("job lookup: %w", err)
	}
	if job == nil || job.DeviceID != device.ID {
		return ErrJobNotFound
	}

	if err := u.jobRepo.UpdateStatus(job.ID, status); err != nil {
		return fmt.Errorf("update job status: %w", err)
	}

	u.logger.Info("job finished",
		zap.String("job_id", job.ID),
		zap.String("device_id", device.ID),
		zap.String("status", status))
	return nil
}
