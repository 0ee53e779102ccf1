package repository

import (
	"scouting-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoutGroupRepository handles database operations for scout groups
type ScoutGroupRepository struct {
	db *gorm.DB
}

// NewScoutGroupRepository creates a new scout group repository
func NewScoutGroupRepository(db *gorm.DB) *ScoutGroupRepository {
	return &ScoutGroupRepository{db: db}
}

// Create creates a new scout group
func (r *ScoutGroupRepository) Create(group *models.ScoutGroup) error {
	return r.db.Create(group).Error
}

// GetByID retrieves a scout group by ID
func (r *ScoutGroupRepository) GetByID(id uuid.UUID) (*models.ScoutGroup, error) {
	var group models.ScoutGroup
	err := r.db.First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetAll retrieves all scout groups
func (r *ScoutGroupRepository) GetAll() ([]models.ScoutGroup, error) {
	var groups []models.ScoutGroup
	err := r.db.Find(&groups).Error
	return groups, err
}

// Update updates a scout group
func (r *ScoutGroupRepository) Update(group *models.ScoutGroup) error {
	return r.db.Save(group).Error
}

// Delete deletes a scout group
func (r *ScoutGroupRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ScoutGroup{}, "id = ?", id).Error
}
