package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bistro-pos/internal/auth"
	"bistro-pos/internal/core"
	"bistro-pos/internal/models"
)

// AuthMiddleware validates the bearer token and stores the acting staff
// member's ids on the request context.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("staffID", claims.StaffID)
		c.Set("roleID", claims.RoleID)
		c.Next()
	}
}

// RequirePermission guards view routes. Workflow routes are additionally
// checked inside the engine; this gate just fails fast.
func RequirePermission(store *core.Store, perm models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID, exists := c.Get("staffID")
		if !exists || !store.HasPermission(staffID.(int), perm) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffID pulls the authenticated staff id set by AuthMiddleware.
func StaffID(c *gin.Context) int {
	return c.MustGet("staffID").(int)
}
