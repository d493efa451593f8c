package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/models"
)

// centerRepository implements CenterRepository interface
type centerRepository struct {
	db *gorm.DB
}

// NewCenterRepository creates a new center repository
func NewCenterRepository(db *gorm.DB) CenterRepository {
	return &centerRepository{db: db}
}

// Create creates a new center
func (r *centerRepository) Create(ctx context.Context, center *models.Center) error {
	return r.db.WithContext(ctx).Create(center).Error
}

// List lists all centers ordered by center number
func (r *centerRepository) List(ctx context.Context) ([]*models.Center, error) {
	var centers []*models.Center
	err := r.db.WithContext(ctx).Order("center_no").Find(&centers).Error
	if err != nil {
		return nil, err
	}
	return centers, nil
}

// ExistsByCenterNo checks if a center number exists
func (r *centerRepository) ExistsByCenterNo(ctx context.Context, centerNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Center{}).Where("center_no = ?", centerNo).Count(&count).Error
	return count > 0, err
}
