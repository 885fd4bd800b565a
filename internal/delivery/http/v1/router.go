package v1

import (
	"net/http"
	"time"

	"go-internmatch-backend/config"
	"go-internmatch-backend/internal/delivery/http/middleware"
	"go-internmatch-backend/internal/delivery/http/response"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	CandidateUC   domain.CandidateUsecase
	CompanyUC     domain.CompanyUsecase
	SkillUC       domain.SkillUsecase
	ApplicationUC domain.ApplicationUsecase
	InteractionUC domain.InteractionUsecase
	BlobStore     domain.BlobStore
	JWTService    *auth.JWTService
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	authLimit := middleware.RateLimitMiddleware(
		middleware.AuthRateLimit(deps.Config.RateLimitAuthThreshold, window))
	loginLimit := middleware.RateLimitMiddleware(
		middleware.LoginRateLimit(deps.Config.RateLimitLoginThreshold, window))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWTService))

	candidateOnly := protected.Group("")
	candidateOnly.Use(middleware.RequireRoles(domain.RoleCandidate))

	companyOnly := protected.Group("")
	companyOnly.Use(middleware.RequireRoles(domain.RoleCompany))

	NewAuthHandler(v1, protected, deps.AuthUC, authLimit, loginLimit)
	NewCandidateHandler(candidateOnly, deps.CandidateUC, deps.SkillUC, deps.BlobStore)
	NewCompanyHandler(companyOnly, deps.CompanyUC, deps.BlobStore)
	NewStudentHandler(companyOnly, deps.CandidateUC)
	NewApplicationHandler(candidateOnly, deps.ApplicationUC)
	NewInteractionHandler(candidateOnly, companyOnly, deps.InteractionUC)

	return r
}
