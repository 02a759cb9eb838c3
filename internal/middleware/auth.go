package middleware

import (
	"net/http"
	"strings"

	"event-admin-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ContextKeyUser is where the gate stores the authenticated username.
const ContextKeyUser = "user"

// RequireAuth gates a route group behind a bearer token. Any valid token
// authorizes all protected operations; there is no per-user permission
// model beyond the single admin account.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ContextKeyUser, claims.User)
		c.Next()
	}
}
