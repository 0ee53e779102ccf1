package repository

import (
	"scouting-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	Upsert(userID uuid.UUID, apply func(*models.Profile)) (*models.Profile, error)
}

// ScoutGroupRepositoryInterface defines the interface for scout group repository operations
type ScoutGroupRepositoryInterface interface {
	Create(group *models.ScoutGroup) error
	GetByID(id uuid.UUID) (*models.ScoutGroup, error)
	GetAll() ([]models.ScoutGroup, error)
	Update(group *models.ScoutGroup) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetByCoordinator(coordinadorID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByID(id uuid.UUID) (*models.Membership, error)
	GetAll() ([]models.Membership, error)
	GetByTeamIDs(teamIDs []uuid.UUID) ([]models.Membership, error)
	Delete(id uuid.UUID) error
}

// AppearanceRepositoryInterface defines the interface for appearance repository operations
type AppearanceRepositoryInterface interface {
	GetFirst() (*models.Appearance, error)
	Upsert(portadaURL string) (*models.Appearance, error)
}
