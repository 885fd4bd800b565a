package middleware

import (
	"net/http"

	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer credential and attaches the principal
// claims to the request context. It only authenticates; role gating is
// RequireRoles' job.
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyProfileID), claims.ProfileID)
		c.Set(string(domain.KeyUserRole), claims.Role)
		c.Set(string(domain.KeyUserName), claims.Name)

		c.Next()
	}
}
