package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"sportshub/internal/domain/user"
	"sportshub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	WebhookSecretHeader = "X-Webhook-Secret"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, actor.ID)
		c.Set(ctxUserRoleKey, actor.Role)
		c.Set("jwt_claims", map[string]any{
			"user_id": actor.ID.String(),
			"role":    actor.Role.String(),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		for _, r := range roles {
			if r == role {
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": gin.H{"message": "Insufficient permissions"},
		})
		c.Abort()
	}
}

// RequireWebhookSecret guards provider callbacks, which carry no user token.
func RequireWebhookSecret(secret string) gin.HandlerFunc {
	expected := []byte(secret)
	return func(c *gin.Context) {
		got := []byte(c.GetHeader(WebhookSecretHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			slog.Warn("webhook rejected: bad shared secret", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid webhook secret"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the authenticated caller set by RequireAuth.
func GetActor(c *gin.Context) (user.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return user.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return user.Actor{}, false
	}
	return user.Actor{ID: id, Role: role}, true
}
