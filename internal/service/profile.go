package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"scouting-planner-backend/internal/database/models"
	apperrors "scouting-planner-backend/internal/errors"
	"scouting-planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService handles business logic for member profiles
type ProfileService struct {
	repo      repository.ProfileRepositoryInterface
	media     MediaStoreInterface
	validator *validator.Validate
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepositoryInterface, media MediaStoreInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{repo: repo, media: media, validator: validator}
}

// UpsertProfileRequest represents the form fields for the profile upsert.
// Pointer fields that are nil were not submitted and leave the stored
// values untouched.
type UpsertProfileRequest struct {
	Nombre        string  `validate:"required,max=100"`
	Apellido      string  `validate:"required,max=100"`
	FechaNac      string  `validate:"required"` // YYYY-MM-DD
	Departamento  string  `validate:"required,max=100"`
	Distrito      string  `validate:"required,max=100"`
	Telefono      *string `validate:"omitempty,max=30"`
	GrupoScout    *string `validate:"omitempty,max=100"`
	Comunidad     *string `validate:"omitempty,max=100"`
	Direccion     *string `validate:"omitempty,max=200"`
	RedesSociales *string `validate:"omitempty,max=200"`
}

// GetByUserID retrieves the caller's profile
func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Upsert creates or updates the caller's profile. The optional photo is
// stored first so its URL can be applied together with the field changes.
func (s *ProfileService) Upsert(userID uuid.UUID, req *UpsertProfileRequest, photo *multipart.FileHeader) (*models.Profile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	fechaNac, err := time.Parse("2006-01-02", req.FechaNac)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha_nac", "must be a date in YYYY-MM-DD format")
	}

	var fotoURL string
	if photo != nil {
		fotoURL, err = s.media.SaveProfilePhoto(userID, photo)
		if err != nil {
			return nil, fmt.Errorf("failed to store profile photo: %w", err)
		}
	}

	profile, err := s.repo.Upsert(userID, func(p *models.Profile) {
		p.Nombre = req.Nombre
		p.Apellido = req.Apellido
		p.FechaNac = &fechaNac
		p.Departamento = req.Departamento
		p.Distrito = req.Distrito
		if req.Telefono != nil {
			p.Telefono = *req.Telefono
		}
		if req.GrupoScout != nil {
			p.GrupoScout = *req.GrupoScout
		}
		if req.Comunidad != nil {
			p.Comunidad = *req.Comunidad
		}
		if req.Direccion != nil {
			p.Direccion = *req.Direccion
		}
		if req.RedesSociales != nil {
			p.RedesSociales = *req.RedesSociales
		}
		if fotoURL != "" {
			p.FotoURL = fotoURL
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return profile, nil
}
