package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/accountd/internal/database/models"
	"github.com/avolkov/accountd/internal/database/service"
)

// CurrentUserKey is the gin context key holding the resolved user.
const CurrentUserKey = "currentUser"

// AuthMiddleware resolves the current user from a bearer token
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth validates the bearer token and stores the resolved user in
// the request context. Every rejection carries a WWW-Authenticate challenge
// so the caller knows to (re)supply credentials.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.logger.Warn("⚠️ [Middleware] Missing Authorization header")
			m.challenge(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
			m.challenge(c, "Invalid authorization header format")
			return
		}

		user, err := m.service.Authenticate(parts[1])
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Could not resolve user from token", "error", err)
			m.challenge(c, "Could not validate credentials")
			return
		}

		c.Set(CurrentUserKey, user)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", user.ID)

		c.Next()
	}
}

func (m *AuthMiddleware) challenge(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// CurrentUser returns the user resolved by RequireAuth, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
