package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"train-booking-platform/internal/models"
	"train-booking-platform/internal/services"
)

// UserContextKey is the gin context key under which the authenticated user is stored
const UserContextKey = "user"

// AuthMiddleware provides authentication and authorization checks
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth validates the bearer token and stores the user in the context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		user, err := m.authService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// AdminOrReadOnly allows any authenticated user to read but restricts
// writes to administrators. Must run after RequireAuth.
func (m *AuthMiddleware) AdminOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "administrator access required"})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user from the context, or nil
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil
	}

	return user
}
