package testutils

import (
	"fmt"
	"time"

	"scouting-planner-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		HashedPassword: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:           models.RoleCaminante,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Coordinator creates a user with the coordinador role
func (f *UserFactory) Coordinator() *models.User {
	return f.WithRole(models.RoleCoordinador)
}

// Admin creates a user with the administrador role
func (f *UserFactory) Admin() *models.User {
	return f.WithRole(models.RoleAdministrador)
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values for the given user
func (f *ProfileFactory) Create(userID uuid.UUID) *models.Profile {
	fechaNac := time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC)
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:       userID,
		Nombre:       "Ana",
		Apellido:     "Torres",
		Telefono:     "0981123456",
		FechaNac:     &fechaNac,
		Departamento: "Central",
		Distrito:     "Luque",
	}
}

// ScoutGroupFactory provides methods to create test ScoutGroup data
type ScoutGroupFactory struct{}

// NewScoutGroupFactory creates a new ScoutGroupFactory
func NewScoutGroupFactory() *ScoutGroupFactory {
	return &ScoutGroupFactory{}
}

// Create creates a test ScoutGroup with default values
func (f *ScoutGroupFactory) Create() *models.ScoutGroup {
	return &models.ScoutGroup{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "Grupo Scout San Jorge",
		Region:           "Central",
		Localidad:        "Asuncion",
		District:         "Distrito 1",
		Numeral:          "14",
		Address:          "Av. Mariscal Lopez 1234",
		OfficeHours:      "Sabados 14:00-18:00",
		GroupLeaderName:  "Carlos Benitez",
		GroupLeaderEmail: "carlos@example.com",
		GroupLeaderPhone: "0981765432",
	}
}

// WithName sets a custom name for the scout group
func (f *ScoutGroupFactory) WithName(name string) *models.ScoutGroup {
	group := f.Create()
	group.Name = name
	return group
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team led by the given coordinator
func (f *TeamFactory) Create(coordinadorID uuid.UUID) *models.Team {
	creationDate := time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Nombre:        "Equipo Halcones",
		Descripcion:   "Equipo de caminantes del turno tarde",
		CoordinadorID: coordinadorID,
		CreationDate:  &creationDate,
		CommunityName: "Comunidad Sur",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(coordinadorID uuid.UUID, name string) *models.Team {
	team := f.Create(coordinadorID)
	team.Nombre = name
	return team
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership linking a profile to a team
func (f *MembershipFactory) Create(teamID, perfilID uuid.UUID) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   teamID,
		PerfilID: perfilID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User       *UserFactory
	Profile    *ProfileFactory
	ScoutGroup *ScoutGroupFactory
	Team       *TeamFactory
	Membership *MembershipFactory
	Appearance *AppearanceFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Profile:    NewProfileFactory(),
		ScoutGroup: NewScoutGroupFactory(),
		Team:       NewTeamFactory(),
		Membership: NewMembershipFactory(),
		Appearance: NewAppearanceFactory(),
	}
}

// AppearanceFactory provides methods to create test Appearance data
type AppearanceFactory struct{}

// NewAppearanceFactory creates a new AppearanceFactory
func NewAppearanceFactory() *AppearanceFactory {
	return &AppearanceFactory{}
}

// Create creates a test Appearance record
func (f *AppearanceFactory) Create() *models.Appearance {
	return &models.Appearance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PortadaURL: "http://localhost:8000/static/photos/Portada-600-x-400px.jpg",
	}
}
