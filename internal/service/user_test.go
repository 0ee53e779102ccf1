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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSuccess tests successful user creation with a hashed password
func (suite *UserServiceTestSuite) TestCreateSuccess() {
	req := &service.CreateUserRequest{
		Email:    "nuevo@example.com",
		Password: "secreta123",
		Role:     models.RoleCoordinador,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.NotEqual(req.Password, user.HashedPassword)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)))
		return nil
	})

	result, err := suite.userService.Create(req)

	suite.NoError(err)
	suite.Equal(req.Email, result.Email)
	suite.Equal(models.RoleCoordinador, result.Role)
}

// TestCreateDuplicateEmail tests the duplicate email conflict
func (suite *UserServiceTestSuite) TestCreateDuplicateEmail() {
	req := &service.CreateUserRequest{
		Email:    "existente@example.com",
		Password: "secreta123",
		Role:     models.RoleCaminante,
	}
	existing := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     req.Email,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(existing, nil)

	result, err := suite.userService.Create(req)

	suite.Nil(result)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestCreateUnknownRole tests rejection of roles outside the known set
func (suite *UserServiceTestSuite) TestCreateUnknownRole() {
	req := &service.CreateUserRequest{
		Email:    "nuevo@example.com",
		Password: "secreta123",
		Role:     models.Role("jefe"),
	}

	result, err := suite.userService.Create(req)

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateInvalidEmail tests struct validation of the email format
func (suite *UserServiceTestSuite) TestCreateInvalidEmail() {
	req := &service.CreateUserRequest{
		Email:    "not-an-email",
		Password: "secreta123",
		Role:     models.RoleCaminante,
	}

	result, err := suite.userService.Create(req)

	suite.Nil(result)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestGetByIDNotFound tests the missing user case
func (suite *UserServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.userService.GetByID(id)

	suite.Nil(result)
	suite.True(apperrors.IsNotFound(err))
}

// TestGetAll tests listing users without leaking password hashes
func (suite *UserServiceTestSuite) TestGetAll() {
	users := []models.User{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@example.com", Role: models.RoleCaminante, HashedPassword: "hash-a"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "b@example.com", Role: models.RoleAdministrador, HashedPassword: "hash-b"},
	}

	suite.mockUserRepo.EXPECT().GetAll().Return(users, nil)

	result, err := suite.userService.GetAll()

	suite.NoError(err)
	suite.Len(result, 2)
	suite.Equal("a@example.com", result[0].Email)
	suite.Equal(models.RoleAdministrador, result[1].Role)
}

// TestUpdatePartial tests that empty fields keep the stored values
func (suite *UserServiceTestSuite) TestUpdatePartial() {
	id := uuid.New()
	user := &models.User{
		BaseModel:      models.BaseModel{ID: id},
		Email:          "viejo@example.com",
		HashedPassword: "hash-viejo",
		Role:           models.RoleCaminante,
	}
	empty := ""
	newRole := models.RoleCoordinador

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.User) error {
		suite.Equal("viejo@example.com", updated.Email)
		suite.Equal("hash-viejo", updated.HashedPassword)
		suite.Equal(models.RoleCoordinador, updated.Role)
		return nil
	})

	result, err := suite.userService.Update(id, &service.UpdateUserRequest{
		Email:    &empty,
		Password: &empty,
		Role:     &newRole,
	})

	suite.NoError(err)
	suite.Equal(models.RoleCoordinador, result.Role)
}

// TestUpdateRehashesPassword tests that a new password is stored hashed
func (suite *UserServiceTestSuite) TestUpdateRehashesPassword() {
	id := uuid.New()
	user := &models.User{
		BaseModel:      models.BaseModel{ID: id},
		Email:          "cuenta@example.com",
		HashedPassword: "hash-viejo",
		Role:           models.RoleCaminante,
	}
	newPassword := "clave-nueva"

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.User) error {
		suite.NotEqual("hash-viejo", updated.HashedPassword)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(updated.HashedPassword), []byte(newPassword)))
		return nil
	})

	_, err := suite.userService.Update(id, &service.UpdateUserRequest{Password: &newPassword})

	suite.NoError(err)
}

// TestUpdateUnknownRole tests role validation on update
func (suite *UserServiceTestSuite) TestUpdateUnknownRole() {
	id := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     "cuenta@example.com",
		Role:      models.RoleCaminante,
	}
	badRole := models.Role("jefe")

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)

	result, err := suite.userService.Update(id, &service.UpdateUserRequest{Role: &badRole})

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

// TestDeleteNotFound tests deleting a missing user
func (suite *UserServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.userService.Delete(id)

	suite.True(apperrors.IsNotFound(err))
}

// TestDeleteSuccess tests the happy path for delete
func (suite *UserServiceTestSuite) TestDeleteSuccess() {
	id := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: id}}

	suite.mockUserRepo.EXPECT().GetByID(id).Return(user, nil)
	suite.mockUserRepo.EXPECT().Delete(id).Return(nil)

	err := suite.userService.Delete(id)

	suite.NoError(err)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
