package service_test

import (
	"testing"
	"time"

	"scouting-planner-backend/internal/database/models"
	apperrors "scouting-planner-backend/internal/errors"
	"scouting-planner-backend/internal/mocks"
	"scouting-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProfileServiceTestSuite defines the test suite for ProfileService
type ProfileServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	mockMedia       *mocks.MockMediaStoreInterface
	profileService  *service.ProfileService
}

// SetupTest sets up the test suite
func (suite *ProfileServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockMedia = mocks.NewMockMediaStoreInterface(suite.ctrl)
	suite.profileService = service.NewProfileService(suite.mockProfileRepo, suite.mockMedia, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ProfileServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validUpsertRequest() *service.UpsertProfileRequest {
	return &service.UpsertProfileRequest{
		Nombre:       "Ana",
		Apellido:     "Torres",
		FechaNac:     "2000-03-15",
		Departamento: "Central",
		Distrito:     "Luque",
	}
}

// TestGetByUserIDNotFound tests the missing profile case
func (suite *ProfileServiceTestSuite) TestGetByUserIDNotFound() {
	userID := uuid.New()

	suite.mockProfileRepo.EXPECT().GetByUserID(userID).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.profileService.GetByUserID(userID)

	suite.Nil(result)
	suite.True(apperrors.IsNotFound(err))
}

// TestUpsertAppliesRequiredFields tests the field application on upsert
func (suite *ProfileServiceTestSuite) TestUpsertAppliesRequiredFields() {
	userID := uuid.New()
	req := validUpsertRequest()

	suite.mockProfileRepo.EXPECT().Upsert(userID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, apply func(*models.Profile)) (*models.Profile, error) {
			profile := &models.Profile{UserID: id}
			apply(profile)
			suite.Equal("Ana", profile.Nombre)
			suite.Equal("Torres", profile.Apellido)
			suite.Equal("Central", profile.Departamento)
			suite.Equal("Luque", profile.Distrito)
			suite.NotNil(profile.FechaNac)
			suite.Equal(time.Date(2000, time.March, 15, 0, 0, 0, 0, time.UTC), *profile.FechaNac)
			return profile, nil
		})

	result, err := suite.profileService.Upsert(userID, req, nil)

	suite.NoError(err)
	suite.Equal("Ana", result.Nombre)
}

// TestUpsertLeavesAbsentOptionalFields tests that nil optional fields keep
// stored values while submitted ones overwrite
func (suite *ProfileServiceTestSuite) TestUpsertLeavesAbsentOptionalFields() {
	userID := uuid.New()
	req := validUpsertRequest()
	telefono := "0981000111"
	req.Telefono = &telefono

	suite.mockProfileRepo.EXPECT().Upsert(userID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, apply func(*models.Profile)) (*models.Profile, error) {
			profile := &models.Profile{
				UserID:     id,
				Telefono:   "viejo",
				GrupoScout: "Grupo Existente",
			}
			apply(profile)
			suite.Equal("0981000111", profile.Telefono)
			suite.Equal("Grupo Existente", profile.GrupoScout)
			return profile, nil
		})

	_, err := suite.profileService.Upsert(userID, req, nil)

	suite.NoError(err)
}

// TestUpsertMissingRequiredField tests struct validation
func (suite *ProfileServiceTestSuite) TestUpsertMissingRequiredField() {
	req := validUpsertRequest()
	req.Apellido = ""

	result, err := suite.profileService.Upsert(uuid.New(), req, nil)

	suite.Nil(result)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestUpsertBadDate tests the date format validation
func (suite *ProfileServiceTestSuite) TestUpsertBadDate() {
	req := validUpsertRequest()
	req.FechaNac = "15/03/2000"

	result, err := suite.profileService.Upsert(uuid.New(), req, nil)

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

// TestUpsertWithPhoto tests that the photo is stored and its URL applied
func (suite *ProfileServiceTestSuite) TestUpsertWithPhoto() {
	userID := uuid.New()
	req := validUpsertRequest()
	header := makeFileHeader(suite.T(), "foto", "perfil.jpg", "jpeg-bytes")
	photoURL := "http://localhost:8000/static/photos/" + userID.String() + "_perfil.jpg"

	suite.mockMedia.EXPECT().SaveProfilePhoto(userID, header).Return(photoURL, nil)
	suite.mockProfileRepo.EXPECT().Upsert(userID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, apply func(*models.Profile)) (*models.Profile, error) {
			profile := &models.Profile{UserID: id}
			apply(profile)
			suite.Equal(photoURL, profile.FotoURL)
			return profile, nil
		})

	result, err := suite.profileService.Upsert(userID, req, header)

	suite.NoError(err)
	suite.Equal(photoURL, result.FotoURL)
}

// TestUpsertWithoutPhotoKeepsStoredURL tests that omitting the photo keeps
// the stored photo URL
func (suite *ProfileServiceTestSuite) TestUpsertWithoutPhotoKeepsStoredURL() {
	userID := uuid.New()
	req := validUpsertRequest()

	suite.mockProfileRepo.EXPECT().Upsert(userID, gomock.Any()).DoAndReturn(
		func(id uuid.UUID, apply func(*models.Profile)) (*models.Profile, error) {
			profile := &models.Profile{UserID: id, FotoURL: "http://localhost:8000/static/photos/vieja.jpg"}
			apply(profile)
			suite.Equal("http://localhost:8000/static/photos/vieja.jpg", profile.FotoURL)
			return profile, nil
		})

	_, err := suite.profileService.Upsert(userID, req, nil)

	suite.NoError(err)
}

// TestProfileServiceTestSuite runs the test suite
func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
