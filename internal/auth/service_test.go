package auth_test

import (
	"testing"
	"time"

	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/database/models"
	apperrors "scouting-planner-backend/internal/errors"
	"scouting-planner-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for the auth Service
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.Service
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewService(&config.Config{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	}, suite.mockUserRepo)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestHashPasswordRoundtrip tests that the stored hash verifies against
// the raw password and never equals it
func (suite *AuthServiceTestSuite) TestHashPasswordRoundtrip() {
	hash, err := auth.HashPassword("secreta123")

	suite.NoError(err)
	suite.NotEqual("secreta123", hash)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(hash), []byte("secreta123")))
	suite.Error(bcrypt.CompareHashAndPassword([]byte(hash), []byte("otra-clave")))
}

// TestRegisterDefaultsRole tests that a missing role becomes caminante
func (suite *AuthServiceTestSuite) TestRegisterDefaultsRole() {
	req := &auth.RegisterRequest{Email: "nuevo@example.com", Password: "secreta123"}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		suite.Equal(models.RoleCaminante, user.Role)
		suite.NotEqual("secreta123", user.HashedPassword)
		return nil
	})

	user, err := suite.authService.Register(req)

	suite.NoError(err)
	suite.Equal(models.RoleCaminante, user.Role)
}

// TestRegisterDuplicateEmail tests the conflict on an existing email
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	req := &auth.RegisterRequest{Email: "existente@example.com", Password: "secreta123"}
	existing := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: req.Email}

	suite.mockUserRepo.EXPECT().GetByEmail(req.Email).Return(existing, nil)

	user, err := suite.authService.Register(req)

	suite.Nil(user)
	suite.True(apperrors.IsAlreadyExists(err))
}

// TestRegisterUnknownRole tests rejection of roles outside the known set
func (suite *AuthServiceTestSuite) TestRegisterUnknownRole() {
	req := &auth.RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "secreta123",
		Role:     models.Role("jefe"),
	}

	user, err := suite.authService.Register(req)

	suite.Nil(user)
	suite.True(apperrors.IsValidation(err))
}

// TestLoginSuccess tests a full login roundtrip
func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	hash, err := auth.HashPassword("secreta123")
	suite.Require().NoError(err)
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "cuenta@example.com",
		HashedPassword: hash,
		Role:           models.RoleCaminante,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, err := suite.authService.Login(user.Email, "secreta123")

	suite.NoError(err)
	suite.Equal("bearer", token.TokenType)

	subject, err := suite.authService.ValidateToken(token.AccessToken)
	suite.NoError(err)
	suite.Equal(user.Email, subject)
}

// TestLoginWrongPassword tests that a wrong password fails like an
// unknown email
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	hash, err := auth.HashPassword("secreta123")
	suite.Require().NoError(err)
	user := &models.User{Email: "cuenta@example.com", HashedPassword: hash}

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	token, err := suite.authService.Login(user.Email, "clave-mala")

	suite.Nil(token)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests the unknown email case
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().GetByEmail("nadie@example.com").Return(nil, gorm.ErrRecordNotFound)

	token, err := suite.authService.Login("nadie@example.com", "secreta123")

	suite.Nil(token)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestValidateTokenGarbage tests rejection of malformed tokens
func (suite *AuthServiceTestSuite) TestValidateTokenGarbage() {
	subject, err := suite.authService.ValidateToken("not-a-token")

	suite.Empty(subject)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

// TestValidateTokenWrongSecret tests rejection of tokens signed with a
// different secret
func (suite *AuthServiceTestSuite) TestValidateTokenWrongSecret() {
	other := auth.NewService(&config.Config{
		JWTSecret:       "another-secret",
		TokenTTLMinutes: 60,
	}, suite.mockUserRepo)
	token, err := other.GenerateToken("cuenta@example.com")
	suite.Require().NoError(err)

	subject, err := suite.authService.ValidateToken(token)

	suite.Empty(subject)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

// TestValidateTokenExpired tests rejection of expired tokens
func (suite *AuthServiceTestSuite) TestValidateTokenExpired() {
	expired := auth.NewService(&config.Config{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: -1,
	}, suite.mockUserRepo)
	token, err := expired.GenerateToken("cuenta@example.com")
	suite.Require().NoError(err)

	// Make sure the expiry is strictly in the past even with clock skew.
	time.Sleep(10 * time.Millisecond)

	subject, err := suite.authService.ValidateToken(token)

	suite.Empty(subject)
	suite.ErrorIs(err, apperrors.ErrInvalidToken)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
