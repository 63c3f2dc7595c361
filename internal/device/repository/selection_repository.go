package repository

import (
	"time"

	"safenest-backend/internal/device/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// selectionRepository implements SelectionRepository using GORM
type selectionRepository struct {
	db *gorm.DB
}

// NewSelectionRepository creates a new instance of selectionRepository
func NewSelectionRepository(db *gorm.DB) SelectionRepository {
	return &selectionRepository{
		db: db,
	}
}

func (r *selectionRepository) DeleteByChild(childID string) error {
	return r.db.Where("child_id = ?", childID).Delete(&domain.AppSelection{}).Error
}

func (r *selectionRepository) CreateBatch(selections []*domain.AppSelection) error {
	if len(selections) == 0 {
		return nil
	}
	now := time.Now()
	for _, s := range selections {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		s.CreatedAt = now
	}
	return r.db.Create(&selections).Error
}

func (r *selectionRepository) FindByChild(childID string) ([]*domain.AppSelection, error) {
	var selections []*domain.AppSelection
	err := r.db.Where("child_id = ?", childID).Find(&selections).Error
	return selections, err
}
