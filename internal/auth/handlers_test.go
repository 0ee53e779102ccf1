package auth_test

import (
	"net/http"
	"net/url"
	"testing"

	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/database/models"
	"scouting-planner-backend/internal/mocks"
	"scouting-planner-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthHandlerTestSuite defines the test suite for the auth handlers
type AuthHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	authService := auth.NewService(&config.Config{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	}, suite.mockUserRepo)
	handler := auth.NewHandler(authService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/auth/register", handler.Register)
	suite.httpSuite.Router.POST("/auth/login", handler.Login)
}

// TearDownTest cleans up after each test
func (suite *AuthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegisterSuccess tests a successful registration
func (suite *AuthHandlerTestSuite) TestRegisterSuccess() {
	suite.mockUserRepo.EXPECT().GetByEmail("nuevo@example.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		user.ID = uuid.New()
		return nil
	})

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", map[string]interface{}{
		"email":    "nuevo@example.com",
		"password": "secreta123",
	})

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal("nuevo@example.com", response["email"])
	suite.Equal(string(models.RoleCaminante), response["role"])
	suite.NotContains(response, "password")
	suite.NotContains(response, "hashed_password")
}

// TestRegisterDuplicate tests the conflict response
func (suite *AuthHandlerTestSuite) TestRegisterDuplicate() {
	existing := &models.User{Email: "existente@example.com"}
	suite.mockUserRepo.EXPECT().GetByEmail("existente@example.com").Return(existing, nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", map[string]interface{}{
		"email":    "existente@example.com",
		"password": "secreta123",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

// TestRegisterMissingBody tests binding validation
func (suite *AuthHandlerTestSuite) TestRegisterMissingBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", map[string]interface{}{
		"email": "incompleto@example.com",
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestRegisterUnknownRole tests rejection of unknown roles
func (suite *AuthHandlerTestSuite) TestRegisterUnknownRole() {
	recorder := suite.httpSuite.MakeRequest("POST", "/auth/register", map[string]interface{}{
		"email":    "nuevo@example.com",
		"password": "secreta123",
		"role":     "jefe",
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestLoginSuccess tests the form-encoded login flow
func (suite *AuthHandlerTestSuite) TestLoginSuccess() {
	hash, err := auth.HashPassword("secreta123")
	suite.Require().NoError(err)
	user := &models.User{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		Email:          "cuenta@example.com",
		HashedPassword: hash,
	}

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	form := url.Values{}
	form.Set("username", user.Email)
	form.Set("password", "secreta123")
	recorder := suite.httpSuite.MakeFormRequest("POST", "/auth/login", form)

	var response auth.TokenResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("bearer", response.TokenType)
	suite.NotEmpty(response.AccessToken)
}

// TestLoginWrongPassword tests that bad credentials yield 400
func (suite *AuthHandlerTestSuite) TestLoginWrongPassword() {
	hash, err := auth.HashPassword("secreta123")
	suite.Require().NoError(err)
	user := &models.User{Email: "cuenta@example.com", HashedPassword: hash}

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	form := url.Values{}
	form.Set("username", user.Email)
	form.Set("password", "clave-mala")
	recorder := suite.httpSuite.MakeFormRequest("POST", "/auth/login", form)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "incorrect email or password")
}

// TestLoginMissingFields tests form binding validation
func (suite *AuthHandlerTestSuite) TestLoginMissingFields() {
	form := url.Values{}
	form.Set("username", "cuenta@example.com")
	recorder := suite.httpSuite.MakeFormRequest("POST", "/auth/login", form)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

// TestAuthHandlerTestSuite runs the test suite
func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
