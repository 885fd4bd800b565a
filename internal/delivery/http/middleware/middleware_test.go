package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-internmatch-backend/internal/delivery/http/middleware"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "test",
	})
}

func protectedRouter(svc *auth.JWTService, roles ...domain.Role) *gin.Engine {
	r := gin.New()
	group := r.Group("", middleware.AuthMiddleware(svc))
	if len(roles) > 0 {
		group.Use(middleware.RequireRoles(roles...))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"profile_id": c.GetInt64(string(domain.KeyProfileID)),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := testJWTService()

	t.Run("Should reject a missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		protectedRouter(svc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		protectedRouter(svc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		token, err := svc.GenerateTokenWithExpiry(1, 1, "CANDIDATE", "x", -time.Minute)
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(svc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should attach the principal for a valid token", func(t *testing.T) {
		token, err := svc.GenerateToken(1, 77, "CANDIDATE", "Somchai")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(svc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "77")
	})
}

func TestRequireRoles(t *testing.T) {
	svc := testJWTService()

	t.Run("Should return 403 for the wrong role", func(t *testing.T) {
		token, err := svc.GenerateToken(1, 1, "CANDIDATE", "x")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(svc, domain.RoleCompany).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should return 403 for a role outside the closed set", func(t *testing.T) {
		token, err := svc.GenerateToken(1, 1, "SUPERUSER", "x")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(svc, domain.RoleCompany).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should return 401 when no principal was attached", func(t *testing.T) {
		r := gin.New()
		r.GET("/ping", middleware.RequireRoles(domain.RoleCompany), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should pass the matching role through", func(t *testing.T) {
		token, err := svc.GenerateToken(1, 1, "COMPANY", "x")
		assert.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		protectedRouter(svc, domain.RoleCompany).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	router := func(err error) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/boom", func(c *gin.Context) {
			c.Error(err)
		})
		return r
	}

	t.Run("Should render typed errors with their status and kind", func(t *testing.T) {
		w := httptest.NewRecorder()
		router(apperror.Conflict(apperror.KindDuplicateApplication, "Application already submitted")).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.KindDuplicateApplication)
	})

	t.Run("Should hide untyped errors behind an opaque 500", func(t *testing.T) {
		w := httptest.NewRecorder()
		router(assert.AnError).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}
