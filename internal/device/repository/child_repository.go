package repository

import (
	"errors"

	"safenest-backend/internal/device/domain"

	"gorm.io/gorm"
)

// childRepository implements ChildRepository using GORM
type childRepository struct {
	db *gorm.DB
}

// NewChildRepository creates a new instance of childRepository
func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{
		db: db,
	}
}

func (r *childRepository) FindByID(id string) (*domain.Child, error) {
	var child domain.Child
	err := r.db.Where("id = ?", id).First(&child).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}
