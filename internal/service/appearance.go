package service

import (
	"errors"
	"fmt"
	"mime/multipart"

	"scouting-planner-backend/internal/database/models"
	"scouting-planner-backend/internal/repository"

	"gorm.io/gorm"
)

// AppearanceService handles business logic for the site appearance record
type AppearanceService struct {
	repo  repository.AppearanceRepositoryInterface
	media MediaStoreInterface
}

// NewAppearanceService creates a new appearance service
func NewAppearanceService(repo repository.AppearanceRepositoryInterface, media MediaStoreInterface) *AppearanceService {
	return &AppearanceService{repo: repo, media: media}
}

// Get returns the appearance record, or an empty default when none has
// been created yet.
func (s *AppearanceService) Get() (*models.Appearance, error) {
	appearance, err := s.repo.GetFirst()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Appearance{PortadaURL: ""}, nil
		}
		return nil, fmt.Errorf("failed to get appearance: %w", err)
	}
	return appearance, nil
}

// UpdateCover stores the uploaded cover image and points the appearance
// record at it. The cover always lands on the same filename, so a new
// upload replaces the previous image under an unchanged URL.
func (s *AppearanceService) UpdateCover(cover *multipart.FileHeader) (*models.Appearance, error) {
	url, err := s.media.SaveCover(cover)
	if err != nil {
		return nil, fmt.Errorf("failed to store cover image: %w", err)
	}

	appearance, err := s.repo.Upsert(url)
	if err != nil {
		return nil, fmt.Errorf("failed to update appearance: %w", err)
	}
	return appearance, nil
}
