package usecase

import (
	"encoding/json"
	"fmt"

	"safenest-backend/internal/device/domain"
	"safenest-backend/internal/device/dto"
	"safenest-backend/internal/device/repository"

	"go.uber.org/zap"
)

// deviceUsecase implements DeviceUsecase
type deviceUsecase struct {
	deviceRepo    repository.DeviceRepository
	childRepo     repository.ChildRepository
	appRepo       repository.AppRepository
	selectionRepo repository.SelectionRepository
	jobRepo       repository.JobRepository
	tokens        *TokenService
	logger        *zap.Logger
}

// NewDeviceUsecase creates a new instance of deviceUsecase
func NewDeviceUsecase(
	deviceRepo repository.DeviceRepository,
	childRepo repository.ChildRepository,
	appRepo repository.AppRepository,
	selectionRepo repository.SelectionRepository,
	jobRepo repository.JobRepository,
	tokens *TokenService,
	logger *zap.Logger,
) DeviceUsecase {
	return &deviceUsecase{
		deviceRepo:    deviceRepo,
		childRepo:     childRepo,
		appRepo:       appRepo,
		selectionRepo: selectionRepo,
		jobRepo:       jobRepo,
		tokens:        tokens,
		logger:        logger,
	}
}

type jobChild struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type jobApp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Platform  string `json:"platform"`
	Essential bool   `json:"essential"`
	Category  string `json:"category"`
}

type postInstallPayload struct {
	Child      jobChild       `json:"child"`
	Apps       []jobApp       `json:"apps"`
	WebFilters map[string]any `json:"web_filters"`
}

// PostInstall runs the provisioning pipeline: device lookup, child link,
// selection replacement, job enqueue. The link and the job insert are fatal
// on failure; selection persistence and metadata lookups are best-effort
// relative to the job being queued.
func (u *deviceUsecase) PostInstall(in *dto.PostInstallInput) error {
	device, err := u.deviceRepo.FindByCode(in.DeviceCode)
	if err != nil {
		return fmt.Errorf("device lookup: %w", err)
	}
	if device == nil {
		return ErrDeviceNotFound
	}

	if err := u.deviceRepo.LinkChild(device.ID, in.ChildID); err != nil {
		return fmt.Errorf("%w: %v", ErrLinkDevice, err)
	}

	u.replaceSelections(in.ChildID, in.AppIDs)

	payload, err := json.Marshal(u.buildPayload(in))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueueJob, err)
	}

	job := &domain.DeviceJob{
		DeviceID: device.ID,
		Type:     domain.JobTypePostInstall,
		Payload:  payload,
		Status:   domain.JobStatusQueued,
	}
	if err := u.jobRepo.Create(job); err != nil {
		return fmt.Errorf("%w: %v", ErrQueueJob, err)
	}

	u.logger.Info("postinstall job queued",
		zap.String("device_id", device.ID),
		zap.String("child_id", in.ChildID),
		zap.Int("app_count", len(in.AppIDs)))
	return nil
}

// replaceSelections deletes then re-inserts the child's selection set. An
// empty app list clears the set. Failures on either statement are logged and
// tolerated; the job enqueue must still happen.
func (u *deviceUsecase) replaceSelections(childID string, appIDs []string) {
	if err := u.selectionRepo.DeleteByChild(childID); err != nil {
		u.logger.Warn("failed to clear app selections",
			zap.String("child_id", childID), zap.Error(err))
	}

	if len(appIDs) == 0 {
		return
	}

	selections := make([]*domain.AppSelection, 0, len(appIDs))
	for _, appID := range appIDs {
		selections = append(selections, &domain.AppSelection{
			ChildID: childID,
			AppID:   appID,
		})
	}
	if err := u.selectionRepo.CreateBatch(selections); err != nil {
		u.logger.Warn("failed to insert app selections",
			zap.String("child_id", childID), zap.Error(err))
	}
}

// buildPayload snapshots child and app metadata for the job. Lookups degrade
// rather than fail: unresolved apps are omitted, an unresolved child collapses
// to its id.
func (u *deviceUsecase) buildPayload(in *dto.PostInstallInput) postInstallPayload {
	apps := make([]jobApp, 0, len(in.AppIDs))
	if rows, err := u.appRepo.FindByIDs(in.AppIDs); err != nil {
		u.logger.Warn("app catalog lookup failed", zap.Error(err))
	} else {
		for _, a := range rows {
			apps = append(apps, jobApp{
				ID:        a.ID,
				Name:      a.Name,
				Type:      a.Type,
				Platform:  a.Platform,
				Essential: a.Essential,
				Category:  a.Category,
			})
		}
	}

	child := jobChild{ID: in.ChildID}
	if row, err := u.childRepo.FindByID(in.ChildID); err != nil {
		u.logger.Warn("child lookup failed",
			zap.String("child_id", in.ChildID), zap.Error(err))
	} else if row != nil {
		child.Name = row.Name
	}

	filters := in.WebFilters
	if filters == nil {
		filters = domain.DefaultWebFilters()
	}

	return postInstallPayload{
		Child:      child,
		Apps:       apps,
		WebFilters: filters,
	}
}

func (u *deviceUsecase) GetByCode(deviceCode string) (*domain.Device, error) {
	device, err := u.deviceRepo.FindByCode(deviceCode)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}
	return device, nil
}
