package middleware

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group by role. Must run after AuthMiddleware:
// an absent principal is a 401 condition, a present principal with the wrong
// role is a 403.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		raw, exists := c.Get(string(domain.KeyUserRole))
		if !exists {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		roleStr, _ := raw.(string)
		role := domain.Role(roleStr)
		if !role.Valid() || !allowed[role] {
			response.Error(c, http.StatusForbidden, "You do not have permission to perform this action", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
