package repository

import (
	"scouting-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByID retrieves a membership by ID
func (r *MembershipRepository) GetByID(id uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetAll retrieves all memberships
func (r *MembershipRepository) GetAll() ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.Find(&memberships).Error
	return memberships, err
}

// GetByTeamIDs retrieves memberships belonging to any of the given teams
func (r *MembershipRepository) GetByTeamIDs(teamIDs []uuid.UUID) ([]models.Membership, error) {
	memberships := []models.Membership{}
	if len(teamIDs) == 0 {
		return memberships, nil
	}
	err := r.db.Where("team_id IN ?", teamIDs).Find(&memberships).Error
	return memberships, err
}

// Delete deletes a membership
func (r *MembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "id = ?", id).Error
}
