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

// MembershipService handles business logic for team memberships
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{repo: repo, teamRepo: teamRepo, validator: validator}
}

// CreateMembershipRequest represents the request to add a profile to a team.
// The referenced profile is not verified to exist.
type CreateMembershipRequest struct {
	TeamID   uuid.UUID `json:"team_id" validate:"required"`
	PerfilID uuid.UUID `json:"perfil_id" validate:"required"`
}

// ListForCaller returns all memberships for administrators; any other
// caller sees only memberships of teams they coordinate.
func (s *MembershipService) ListForCaller(caller *models.User) ([]models.Membership, error) {
	if caller.Role == models.RoleAdministrador {
		memberships, err := s.repo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list memberships: %w", err)
		}
		return memberships, nil
	}

	teams, err := s.teamRepo.GetByCoordinator(caller.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list coordinated teams: %w", err)
	}
	teamIDs := make([]uuid.UUID, 0, len(teams))
	for _, team := range teams {
		teamIDs = append(teamIDs, team.ID)
	}

	memberships, err := s.repo.GetByTeamIDs(teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

// Create adds a profile to a team. Only the team's coordinator may do
// this, administrators included.
func (s *MembershipService) Create(caller *models.User, req *CreateMembershipRequest) (*models.Membership, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipForbidden
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if team.CoordinadorID != caller.ID {
		return nil, apperrors.ErrMembershipForbidden
	}

	membership := &models.Membership{
		TeamID:   req.TeamID,
		PerfilID: req.PerfilID,
	}
	if err := s.repo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return membership, nil
}

// Delete removes a membership. Allowed for administrators and for the
// coordinator of the membership's team.
func (s *MembershipService) Delete(caller *models.User, id uuid.UUID) error {
	membership, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return fmt.Errorf("failed to get membership: %w", err)
	}

	team, err := s.teamRepo.GetByID(membership.TeamID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to get team: %w", err)
	}
	if team == nil || (caller.Role != models.RoleAdministrador && team.CoordinadorID != caller.ID) {
		return apperrors.ErrMembershipForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}
