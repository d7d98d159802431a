package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storely/storefront-api/auth"
	"github.com/storely/storefront-api/models"
	"github.com/storely/storefront-api/utils"
)

// ValidateToken checks the Authorization header and stores the caller's
// identity in the request context.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		utils.Fail(c, http.StatusUnauthorized, "authorization header is missing")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		utils.Fail(c, http.StatusUnauthorized, "invalid token format")
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		utils.Fail(c, http.StatusUnauthorized, "invalid or expired token")
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Set("role", claims.Role)
	c.Next()
}

// AdminRequired gates catalog mutations behind the admin role. Must run after
// ValidateToken.
func AdminRequired(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		utils.Fail(c, http.StatusForbidden, "admin privileges required")
		c.Abort()
		return
	}
	c.Next()
}

// UserID reads the authenticated user's id set by ValidateToken.
func UserID(c *gin.Context) uint {
	id, _ := c.Get("user_id")
	userID, _ := id.(uint)
	return userID
}
