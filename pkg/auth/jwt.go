package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// JWTConfig defines signing settings for session credentials.
type JWTConfig struct {
	SecretKey   string
	TokenExpiry time.Duration
	TokenIssuer string
}

// JWTService issues and validates HS256 session credentials.
type JWTService struct {
	config JWTConfig
}

func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{config: config}
}

// Claims is the principal embedded in every session credential.
type Claims struct {
	UserID    int64  `json:"userId"`
	ProfileID int64  `json:"profileId"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken signs a credential for the given principal using the
// configured expiry.
func (s *JWTService) GenerateToken(userID, profileID int64, role, name string) (string, error) {
	return s.GenerateTokenWithExpiry(userID, profileID, role, name, s.config.TokenExpiry)
}

// GenerateTokenWithExpiry allows callers (e.g. federated login) to override
// the credential lifetime.
func (s *JWTService) GenerateTokenWithExpiry(userID, profileID int64, role, name string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		ProfileID: profileID,
		Role:      role,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the embedded
// principal claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header.
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}
	return authHeader, nil
}
