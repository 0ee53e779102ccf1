package service_test

import (
	"testing"

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

// ScoutGroupServiceTestSuite defines the test suite for ScoutGroupService
type ScoutGroupServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockGroupRepo     *mocks.MockScoutGroupRepositoryInterface
	scoutGroupService *service.ScoutGroupService
}

// SetupTest sets up the test suite
func (suite *ScoutGroupServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGroupRepo = mocks.NewMockScoutGroupRepositoryInterface(suite.ctrl)
	suite.scoutGroupService = service.NewScoutGroupService(suite.mockGroupRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *ScoutGroupServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSuccess tests successful scout group creation
func (suite *ScoutGroupServiceTestSuite) TestCreateSuccess() {
	req := &service.CreateScoutGroupRequest{
		Name:      "Grupo Scout San Jorge",
		Region:    "Central",
		Localidad: "Asuncion",
	}

	suite.mockGroupRepo.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.scoutGroupService.Create(req)

	suite.NoError(err)
	suite.Equal("Grupo Scout San Jorge", result.Name)
	suite.Equal("Central", result.Region)
}

// TestCreateMissingName tests that the name is required
func (suite *ScoutGroupServiceTestSuite) TestCreateMissingName() {
	req := &service.CreateScoutGroupRequest{Region: "Central"}

	result, err := suite.scoutGroupService.Create(req)

	suite.Nil(result)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestCreateBadLeaderEmail tests leader email validation
func (suite *ScoutGroupServiceTestSuite) TestCreateBadLeaderEmail() {
	req := &service.CreateScoutGroupRequest{
		Name:             "Grupo Scout San Jorge",
		GroupLeaderEmail: "not-an-email",
	}

	result, err := suite.scoutGroupService.Create(req)

	suite.Nil(result)
	suite.Error(err)
}

// TestGetByIDNotFound tests the missing group case
func (suite *ScoutGroupServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockGroupRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.scoutGroupService.GetByID(id)

	suite.Nil(result)
	suite.True(apperrors.IsNotFound(err))
}

// TestUpdatePartial tests that only submitted fields change
func (suite *ScoutGroupServiceTestSuite) TestUpdatePartial() {
	id := uuid.New()
	group := &models.ScoutGroup{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Grupo Viejo",
		Region:    "Central",
	}
	newName := "Grupo Nuevo"

	suite.mockGroupRepo.EXPECT().GetByID(id).Return(group, nil)
	suite.mockGroupRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.ScoutGroup) error {
		suite.Equal("Grupo Nuevo", updated.Name)
		suite.Equal("Central", updated.Region)
		return nil
	})

	result, err := suite.scoutGroupService.Update(id, &service.UpdateScoutGroupRequest{Name: &newName})

	suite.NoError(err)
	suite.Equal(newName, result.Name)
}

// TestDeleteNotFound tests deleting a missing group
func (suite *ScoutGroupServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	suite.mockGroupRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.scoutGroupService.Delete(id)

	suite.True(apperrors.IsNotFound(err))
}

// TestScoutGroupServiceTestSuite runs the test suite
func TestScoutGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScoutGroupServiceTestSuite))
}
