package service

import (
	"errors"
	"fmt"
	"time"

	"scouting-planner-backend/internal/database/models"
	apperrors "scouting-planner-backend/internal/errors"
	"scouting-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams. Team visibility and
// mutation rights depend on the caller's role and, for coordinators, on
// team ownership.
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Nombre                    string     `json:"nombre" validate:"required,max=100"`
	Descripcion               string     `json:"descripcion"`
	ScoutGroupID              uuid.UUID  `json:"grupo_scout_id" validate:"required"`
	CoordinadorID             *uuid.UUID `json:"coordinador_id,omitempty"`
	AvatarURL                 string     `json:"avatar_url" validate:"max=500"`
	History                   string     `json:"history"`
	CreationDate              *time.Time `json:"creation_date,omitempty"`
	CommunityName             string     `json:"community_name" validate:"max=100"`
	UnlockedAchievementsCount int        `json:"unlocked_achievements_count" validate:"gte=0"`
}

// UpdateTeamRequest represents the request to update a team. Only fields
// present in the request are applied.
type UpdateTeamRequest struct {
	Nombre                    *string    `json:"nombre,omitempty" validate:"omitempty,min=1,max=100"`
	Descripcion               *string    `json:"descripcion,omitempty"`
	ScoutGroupID              *uuid.UUID `json:"grupo_scout_id,omitempty"`
	CoordinadorID             *uuid.UUID `json:"coordinador_id,omitempty"`
	AvatarURL                 *string    `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	History                   *string    `json:"history,omitempty"`
	CreationDate              *time.Time `json:"creation_date,omitempty"`
	CommunityName             *string    `json:"community_name,omitempty" validate:"omitempty,max=100"`
	UnlockedAchievementsCount *int       `json:"unlocked_achievements_count,omitempty" validate:"omitempty,gte=0"`
}

// ListForCaller returns the teams the caller may see: administrators see
// every team, coordinators only the teams they coordinate.
func (s *TeamService) ListForCaller(caller *models.User) ([]models.Team, error) {
	switch caller.Role {
	case models.RoleAdministrador:
		teams, err := s.repo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to list teams: %w", err)
		}
		return teams, nil
	case models.RoleCoordinador:
		teams, err := s.repo.GetByCoordinator(caller.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teams: %w", err)
		}
		return teams, nil
	default:
		return nil, apperrors.ErrTeamListForbidden
	}
}

// GetForCaller retrieves a single team under the same visibility rules as
// ListForCaller.
func (s *TeamService) GetForCaller(caller *models.User, id uuid.UUID) (*models.Team, error) {
	if caller.Role != models.RoleAdministrador && caller.Role != models.RoleCoordinador {
		return nil, apperrors.ErrTeamListForbidden
	}
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if caller.Role == models.RoleCoordinador && team.CoordinadorID != caller.ID {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

// Create creates a new team. When the request does not name a coordinator
// the caller becomes the team's coordinator.
func (s *TeamService) Create(caller *models.User, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	coordinadorID := caller.ID
	if req.CoordinadorID != nil {
		coordinadorID = *req.CoordinadorID
	}

	team := &models.Team{
		Nombre:                    req.Nombre,
		Descripcion:               req.Descripcion,
		CoordinadorID:             coordinadorID,
		ScoutGroupID:              req.ScoutGroupID,
		AvatarURL:                 req.AvatarURL,
		History:                   req.History,
		CreationDate:              req.CreationDate,
		CommunityName:             req.CommunityName,
		UnlockedAchievementsCount: req.UnlockedAchievementsCount,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// Update applies the provided fields to a team, subject to the write rule
// checked by canModify.
func (s *TeamService) Update(caller *models.User, id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.canModify(caller, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		team.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		team.Descripcion = *req.Descripcion
	}
	if req.ScoutGroupID != nil {
		team.ScoutGroupID = *req.ScoutGroupID
	}
	if req.CoordinadorID != nil {
		team.CoordinadorID = *req.CoordinadorID
	}
	if req.AvatarURL != nil {
		team.AvatarURL = *req.AvatarURL
	}
	if req.History != nil {
		team.History = *req.History
	}
	if req.CreationDate != nil {
		team.CreationDate = req.CreationDate
	}
	if req.CommunityName != nil {
		team.CommunityName = *req.CommunityName
	}
	if req.UnlockedAchievementsCount != nil {
		team.UnlockedAchievementsCount = *req.UnlockedAchievementsCount
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// Delete removes a team, subject to the write rule checked by canModify.
func (s *TeamService) Delete(caller *models.User, id uuid.UUID) error {
	if _, err := s.canModify(caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// canModify implements the team write rule: the team must exist and a
// coordinator may only touch teams they coordinate. Any other role passes
// the ownership check. A missing team reports the same authorization
// failure as a foreign team.
func (s *TeamService) canModify(caller *models.User, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamAccessDenied
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if caller.Role == models.RoleCoordinador && team.CoordinadorID != caller.ID {
		return nil, apperrors.ErrTeamAccessDenied
	}
	return team, nil
}
