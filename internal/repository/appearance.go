package repository

import (
	"errors"

	"scouting-planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// AppearanceRepository handles database operations for the appearance record
type AppearanceRepository struct {
	db *gorm.DB
}

// NewAppearanceRepository creates a new appearance repository
func NewAppearanceRepository(db *gorm.DB) *AppearanceRepository {
	return &AppearanceRepository{db: db}
}

// GetFirst retrieves the first appearance row. Only one row is
// meaningful; additional rows are ignored.
func (r *AppearanceRepository) GetFirst() (*models.Appearance, error) {
	var appearance models.Appearance
	err := r.db.Order("created_at").First(&appearance).Error
	if err != nil {
		return nil, err
	}
	return &appearance, nil
}

// Upsert sets the cover URL on the first appearance row, creating it
// when none exists yet.
func (r *AppearanceRepository) Upsert(portadaURL string) (*models.Appearance, error) {
	var appearance models.Appearance
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Order("created_at").First(&appearance).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			appearance = models.Appearance{}
		} else if err != nil {
			return err
		}
		appearance.PortadaURL = portadaURL
		return tx.Save(&appearance).Error
	})
	if err != nil {
		return nil, err
	}
	return &appearance, nil
}
