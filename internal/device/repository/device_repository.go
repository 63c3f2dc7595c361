package repository

import (
	"errors"
	"time"

	"safenest-backend/internal/device/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// deviceRepository implements DeviceRepository using GORM
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new instance of deviceRepository
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (r *deviceRepository) FindByCode(code string) (*domain.Device, error) {
	var device domain.Device
	err := r.db.Where("device_code = ?", code).First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) LinkChild(deviceID, childID string) error {
	return r.db.Model(&domain.Device{}).Where("id = ?", deviceID).
		Updates(map[string]interface{}{
			"child_id":   childID,
			"updated_at": time.Now(),
		}).Error
}

func (r *deviceRepository) TouchClaimed(deviceID string) error {
	now := time.Now()
	return r.db.Model(&domain.Device{}).Where("id = ?", deviceID).
		Updates(map[string]interface{}{
			"last_claimed_at": now,
			"updated_at":      now,
		}).Error
}

// HashPairingSecret hashes a pairing secret for storage on the device row
func HashPairingSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPairingSecret compares a presented pairing secret with the stored hash
func CheckPairingSecret(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
