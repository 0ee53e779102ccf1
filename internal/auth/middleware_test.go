package auth_test

import (
	"net/http"
	"testing"

	"scouting-planner-backend/internal/auth"
	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/database/models"
	"scouting-planner-backend/internal/mocks"
	"scouting-planner-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthMiddlewareTestSuite defines the test suite for the auth middleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.Service
	middleware   *auth.Middleware
	httpSuite    *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewService(&config.Config{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	}, suite.mockUserRepo)
	suite.middleware = auth.NewMiddleware(suite.authService, suite.mockUserRepo)

	suite.httpSuite = testutils.SetupHTTPTest()

	authed := suite.httpSuite.Router.Group("/", suite.middleware.RequireAuth())
	authed.GET("/whoami", func(c *gin.Context) {
		user, _ := auth.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email, "role": user.Role})
	})
	admin := authed.Group("/admin", suite.middleware.RequireRole(models.RoleAdministrador))
	admin.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

// TearDownTest cleans up after each test
func (suite *AuthMiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthMiddlewareTestSuite) tokenFor(user *models.User) string {
	token, err := suite.authService.GenerateToken(user.Email)
	suite.Require().NoError(err)
	return token
}

// TestMissingHeader tests the missing Authorization header case
func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	recorder := suite.httpSuite.MakeRequest("GET", "/whoami", nil)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestMalformedHeader tests a header without the Bearer prefix
func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/whoami", nil, map[string]string{
		"Authorization": "Basic abc123",
	})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestInvalidToken tests a garbage bearer token
func (suite *AuthMiddlewareTestSuite) TestInvalidToken() {
	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/whoami", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestDeletedUser tests a valid token whose subject no longer exists
func (suite *AuthMiddlewareTestSuite) TestDeletedUser() {
	user := &models.User{Email: "borrado@example.com"}
	token := suite.tokenFor(user)

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestValidToken tests that a valid token resolves the stored user
func (suite *AuthMiddlewareTestSuite) TestValidToken() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "cuenta@example.com",
		Role:      models.RoleCaminante,
	}
	token := suite.tokenFor(user)

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/whoami", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "cuenta@example.com")
}

// TestRequireRoleForbidden tests that a caminante is rejected from admin routes
func (suite *AuthMiddlewareTestSuite) TestRequireRoleForbidden() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "cuenta@example.com",
		Role:      models.RoleCaminante,
	}
	token := suite.tokenFor(user)

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/admin/ping", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	suite.Equal(http.StatusForbidden, recorder.Code)
}

// TestRequireRoleAllowed tests that an administrator passes the role check
func (suite *AuthMiddlewareTestSuite) TestRequireRoleAllowed() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "admin@example.com",
		Role:      models.RoleAdministrador,
	}
	token := suite.tokenFor(user)

	suite.mockUserRepo.EXPECT().GetByEmail(user.Email).Return(user, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders("GET", "/admin/ping", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	suite.Equal(http.StatusOK, recorder.Code)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
