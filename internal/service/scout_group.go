package service

import (
	"errors"
	"fmt"

	"scouting-planner-backend/internal/database/models"
	apperrors "scouting-planner-backend/internal/errors"
	"scouting-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScoutGroupService handles business logic for scout groups
type ScoutGroupService struct {
	repo      repository.ScoutGroupRepositoryInterface
	validator *validator.Validate
}

// NewScoutGroupService creates a new scout group service
func NewScoutGroupService(repo repository.ScoutGroupRepositoryInterface, validator *validator.Validate) *ScoutGroupService {
	return &ScoutGroupService{repo: repo, validator: validator}
}

// CreateScoutGroupRequest represents the request to create a scout group
type CreateScoutGroupRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Region           string `json:"region" validate:"max=100"`
	Localidad        string `json:"localidad" validate:"max=100"`
	District         string `json:"district" validate:"max=100"`
	Numeral          string `json:"numeral" validate:"max=20"`
	Address          string `json:"address" validate:"max=200"`
	OfficeHours      string `json:"office_hours" validate:"max=100"`
	GroupLeaderName  string `json:"group_leader_name" validate:"max=100"`
	GroupLeaderEmail string `json:"group_leader_email" validate:"omitempty,email"`
	GroupLeaderPhone string `json:"group_leader_phone" validate:"max=30"`
}

// UpdateScoutGroupRequest represents the request to update a scout group.
// Only fields present in the request are applied.
type UpdateScoutGroupRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Region           *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Localidad        *string `json:"localidad,omitempty" validate:"omitempty,max=100"`
	District         *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Numeral          *string `json:"numeral,omitempty" validate:"omitempty,max=20"`
	Address          *string `json:"address,omitempty" validate:"omitempty,max=200"`
	OfficeHours      *string `json:"office_hours,omitempty" validate:"omitempty,max=100"`
	GroupLeaderName  *string `json:"group_leader_name,omitempty" validate:"omitempty,max=100"`
	GroupLeaderEmail *string `json:"group_leader_email,omitempty" validate:"omitempty,email"`
	GroupLeaderPhone *string `json:"group_leader_phone,omitempty" validate:"omitempty,max=30"`
}

// Create creates a new scout group
func (s *ScoutGroupService) Create(req *CreateScoutGroupRequest) (*models.ScoutGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group := &models.ScoutGroup{
		Name:             req.Name,
		Region:           req.Region,
		Localidad:        req.Localidad,
		District:         req.District,
		Numeral:          req.Numeral,
		Address:          req.Address,
		OfficeHours:      req.OfficeHours,
		GroupLeaderName:  req.GroupLeaderName,
		GroupLeaderEmail: req.GroupLeaderEmail,
		GroupLeaderPhone: req.GroupLeaderPhone,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create scout group: %w", err)
	}
	return group, nil
}

// GetByID retrieves a scout group by ID
func (s *ScoutGroupService) GetByID(id uuid.UUID) (*models.ScoutGroup, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScoutGroupNotFound
		}
		return nil, fmt.Errorf("failed to get scout group: %w", err)
	}
	return group, nil
}

// GetAll retrieves all scout groups
func (s *ScoutGroupService) GetAll() ([]models.ScoutGroup, error) {
	groups, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list scout groups: %w", err)
	}
	return groups, nil
}

// Update applies the provided fields to a scout group
func (s *ScoutGroupService) Update(id uuid.UUID, req *UpdateScoutGroupRequest) (*models.ScoutGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScoutGroupNotFound
		}
		return nil, fmt.Errorf("failed to get scout group: %w", err)
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Region != nil {
		group.Region = *req.Region
	}
	if req.Localidad != nil {
		group.Localidad = *req.Localidad
	}
	if req.District != nil {
		group.District = *req.District
	}
	if req.Numeral != nil {
		group.Numeral = *req.Numeral
	}
	if req.Address != nil {
		group.Address = *req.Address
	}
	if req.OfficeHours != nil {
		group.OfficeHours = *req.OfficeHours
	}
	if req.GroupLeaderName != nil {
		group.GroupLeaderName = *req.GroupLeaderName
	}
	if req.GroupLeaderEmail != nil {
		group.GroupLeaderEmail = *req.GroupLeaderEmail
	}
	if req.GroupLeaderPhone != nil {
		group.GroupLeaderPhone = *req.GroupLeaderPhone
	}

	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update scout group: %w", err)
	}
	return group, nil
}

// Delete removes a scout group
func (s *ScoutGroupService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScoutGroupNotFound
		}
		return fmt.Errorf("failed to get scout group: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete scout group: %w", err)
	}
	return nil
}
