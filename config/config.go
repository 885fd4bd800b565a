package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Session credentials
	JWTSecret             string
	JWTExpiryHours        int // local logins
	JWTSocialExpiryHours  int // federated logins
	PasswordResetTTLMin   int
	// SMTP notifier
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Federated identity providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	LineClientID       string
	LineClientSecret   string
	LineRedirectURI    string
	LineChannelToken   string // Messaging API, for interest push notices
	// Object storage for uploaded media
	StorageURL string
	StorageKey string
	// Redis (rate limiting)
	RedisURL string
	// Rate limiting
	RateLimitWindowSeconds  int
	RateLimitAuthThreshold  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		JWTSecret:            getEnv("JWT_SECRET", ""),
		JWTExpiryHours:       getEnvInt("JWT_EXPIRY_HOURS", 24),
		JWTSocialExpiryHours: getEnvInt("JWT_SOCIAL_EXPIRY_HOURS", 24),
		PasswordResetTTLMin:  getEnvInt("PASSWORD_RESET_TTL_MINUTES", 10),

		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@internmatch.local"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", ""),
		LineClientID:       getEnv("LINE_CLIENT_ID", ""),
		LineClientSecret:   getEnv("LINE_CLIENT_SECRET", ""),
		LineRedirectURI:    getEnv("LINE_REDIRECT_URI", ""),
		LineChannelToken:   getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),

		StorageURL: getEnv("STORAGE_URL", ""),
		StorageKey: getEnv("STORAGE_SERVICE_KEY", ""),

		RedisURL: getEnv("REDIS_URL", ""),

		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitAuthThreshold:  getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Issued sessions will not survive restarts securely.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
