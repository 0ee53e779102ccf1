package service

import (
	"mime/multipart"

	"scouting-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetAll() ([]UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// ProfileServiceInterface defines the interface for profile service
type ProfileServiceInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	Upsert(userID uuid.UUID, req *UpsertProfileRequest, photo *multipart.FileHeader) (*models.Profile, error)
}

// ScoutGroupServiceInterface defines the interface for scout group service
type ScoutGroupServiceInterface interface {
	Create(req *CreateScoutGroupRequest) (*models.ScoutGroup, error)
	GetByID(id uuid.UUID) (*models.ScoutGroup, error)
	GetAll() ([]models.ScoutGroup, error)
	Update(id uuid.UUID, req *UpdateScoutGroupRequest) (*models.ScoutGroup, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListForCaller(caller *models.User) ([]models.Team, error)
	GetForCaller(caller *models.User, id uuid.UUID) (*models.Team, error)
	Create(caller *models.User, req *CreateTeamRequest) (*models.Team, error)
	Update(caller *models.User, id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Delete(caller *models.User, id uuid.UUID) error
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	ListForCaller(caller *models.User) ([]models.Membership, error)
	Create(caller *models.User, req *CreateMembershipRequest) (*models.Membership, error)
	Delete(caller *models.User, id uuid.UUID) error
}

// AppearanceServiceInterface defines the interface for appearance service
type AppearanceServiceInterface interface {
	Get() (*models.Appearance, error)
	UpdateCover(cover *multipart.FileHeader) (*models.Appearance, error)
}

// MediaStoreInterface defines the interface for storing uploaded media files
type MediaStoreInterface interface {
	SaveProfilePhoto(userID uuid.UUID, file *multipart.FileHeader) (string, error)
	SaveCover(file *multipart.FileHeader) (string, error)
}
