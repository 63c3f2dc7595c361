package repository

import (
	"safenest-backend/internal/device/domain"

	"gorm.io/gorm"
)

// appRepository implements AppRepository using GORM
type appRepository struct {
	db *gorm.DB
}

// NewAppRepository creates a new instance of appRepository
func NewAppRepository(db *gorm.DB) AppRepository {
	return &appRepository{
		db: db,
	}
}

func (r *appRepository) FindByIDs(ids []string) ([]*domain.App, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var apps []*domain.App
	err := r.db.Where("id IN ?", ids).Find(&apps).Error
	return apps, err
}
