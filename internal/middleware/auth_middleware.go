package middleware

import (
	"net/http"
	"strings"

	"vendor_hub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", "")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWith(c, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", "")
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			abortWith(c, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error())
			return
		}

		// Set user information in the context for downstream handlers
		c.Set("username", claims.Username)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// RoleAuthMiddleware creates a Gin middleware for role-based authorization.
// It checks if the user role (from JWT claims) is one of the allowed roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			abortWith(c, http.StatusForbidden, utils.ErrCodeForbidden, "User role not found in token claims. Ensure AuthMiddleware runs first.", "")
			return
		}

		roleStr, ok := userRole.(string)
		if !ok {
			abortWith(c, http.StatusInternalServerError, utils.ErrCodeInternalServerError, "User role in token is not a string", "")
			return
		}

		allowed := false
		for _, r := range allowedRoles {
			if strings.EqualFold(roleStr, r) {
				allowed = true
				break
			}
		}

		if !allowed {
			abortWith(c, http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission to access this resource. Required roles: "+strings.Join(allowedRoles, ", "), "")
			return
		}

		c.Next()
	}
}

func abortWith(c *gin.Context, status int, code, message, details string) {
	utils.RespondWithError(c, utils.NewAPIError(status, code, message, details))
}
