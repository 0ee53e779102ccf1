package auth

import (
	"net/http"
	"strings"

	"scouting-planner-backend/internal/database/models"
	"scouting-planner-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// Middleware resolves bearer tokens to stored users and enforces role
// requirements per route group.
type Middleware struct {
	service  *Service
	userRepo repository.UserRepositoryInterface
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, userRepo repository.UserRepositoryInterface) *Middleware {
	return &Middleware{service: service, userRepo: userRepo}
}

// RequireAuth validates the bearer token and loads the caller into the
// request context. Missing, malformed or expired tokens and tokens whose
// subject no longer maps to a stored user all yield 401.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		email, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByEmail(email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			c.Abort()
			return
		}

		SetCurrentUser(c, user)

		c.Next()
	}
}

// RequireRole aborts with 403 unless the authenticated caller has one of
// the given roles. Must run after RequireAuth.
func (m *Middleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
		c.Abort()
	}
}

// SetCurrentUser stores the authenticated user on the gin context
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
	c.Set("email", user.Email)
}

// CurrentUser extracts the authenticated user from the gin context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
