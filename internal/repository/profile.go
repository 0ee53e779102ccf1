package repository

import (
	"errors"

	"scouting-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserID retrieves the profile owned by a user
func (r *ProfileRepository) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert loads the profile for a user (creating a fresh one if absent),
// applies the given mutations and persists the result. The whole
// read-modify-write runs inside one transaction so a partially applied
// update is never visible.
func (r *ProfileRepository) Upsert(userID uuid.UUID, apply func(*models.Profile)) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&profile, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = models.Profile{UserID: userID}
		} else if err != nil {
			return err
		}
		apply(&profile)
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
