package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-internmatch-backend/config"
	_ "go-internmatch-backend/docs" // Important for Swagger
	v1 "go-internmatch-backend/internal/delivery/http/v1"
	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/repository/postgres"
	"go-internmatch-backend/internal/usecase"
	"go-internmatch-backend/pkg/auth"
	"go-internmatch-backend/pkg/database"
	"go-internmatch-backend/pkg/email"
	"go-internmatch-backend/pkg/logger"
	"go-internmatch-backend/pkg/oauth"
	"go-internmatch-backend/pkg/redis"
	"go-internmatch-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           InternMatch API
// @version         1.0
// @description     Internship matching platform connecting student candidates with companies.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(slog.LevelInfo)
	logger.Log.Info("Starting internmatch backend", "port", cfg.Port)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}

	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interactionRepo := postgres.NewInteractionRepository(dbPool)

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be unavailable")
	}

	blobStore := storage.NewObjectStore(cfg.StorageURL, cfg.StorageKey)
	if !blobStore.IsConfigured() {
		logger.Log.Warn("Object storage not configured - uploads will fail")
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWTSecret,
		TokenExpiry: time.Duration(cfg.JWTExpiryHours) * time.Hour,
		TokenIssuer: "internmatch-api",
	})

	providers := map[string]domain.IdentityProvider{
		domain.ProviderGoogle: oauth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI),
		domain.ProviderLine:   oauth.NewLineProvider(cfg.LineClientID, cfg.LineClientSecret, cfg.LineRedirectURI),
	}
	linePusher := oauth.NewLinePusher(cfg.LineChannelToken)

	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, jwtService, validate, emailService, providers, usecase.AuthConfig{
		LocalTokenExpiry:  time.Duration(cfg.JWTExpiryHours) * time.Hour,
		SocialTokenExpiry: time.Duration(cfg.JWTSocialExpiryHours) * time.Hour,
		ResetTokenTTL:     time.Duration(cfg.PasswordResetTTLMin) * time.Minute,
		FrontendURL:       cfg.FrontendURL,
	})
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, candidateRepo, postgres.NewCatalogSuggester(dbPool))
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, companyRepo, validate)
	interactionUC := usecase.NewInteractionUsecase(interactionRepo, companyRepo, candidateRepo, emailService, linePusher)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CandidateUC:   candidateUC,
		CompanyUC:     companyUC,
		SkillUC:       skillUC,
		ApplicationUC: applicationUC,
		InteractionUC: interactionUC,
		BlobStore:     blobStore,
		JWTService:    jwtService,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
