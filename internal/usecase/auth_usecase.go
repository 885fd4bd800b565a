package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/auth"
	"go-internmatch-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// invalidCredentials is deliberately identical for every login failure mode
// so responses cannot be used to enumerate accounts.
const invalidCredentials = "Invalid email or password"

const providerExchangeTimeout = 10 * time.Second

type AuthConfig struct {
	LocalTokenExpiry  time.Duration
	SocialTokenExpiry time.Duration
	ResetTokenTTL     time.Duration
	FrontendURL       string
}

type authUsecase struct {
	userRepo  domain.UserRepository
	jwt       *auth.JWTService
	validate  *validator.Validate
	notifier  domain.Notifier
	providers map[string]domain.IdentityProvider
	cfg       AuthConfig
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	jwtService *auth.JWTService,
	validate *validator.Validate,
	notifier domain.Notifier,
	providers map[string]domain.IdentityProvider,
	cfg AuthConfig,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		jwt:       jwtService,
		validate:  validate,
		notifier:  notifier,
		providers: providers,
		cfg:       cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Invalid registration data: " + err.Error())
	}
	if !input.Role.Valid() {
		return nil, apperror.BadRequest("Unknown role")
	}
	if input.Role == domain.RoleAdmin {
		return nil, apperror.Forbidden("Administrative accounts cannot be self-registered")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: &hash,
		Role:         input.Role,
		AuthProvider: domain.ProviderLocal,
		DisplayName:  input.Name,
	}
	if _, err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || !user.HasLocalPassword() || !auth.CheckPassword(*user.PasswordHash, password) {
		return nil, apperror.BadRequest(invalidCredentials)
	}

	token, err := u.jwt.GenerateTokenWithExpiry(user.ID, user.ProfileID, string(user.Role), user.DisplayName, u.cfg.LocalTokenExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

func (u *authUsecase) FederatedLogin(ctx context.Context, provider, code string) (*domain.AuthResult, error) {
	idp, ok := u.providers[provider]
	if !ok {
		return nil, apperror.BadRequest("Unknown identity provider")
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, providerExchangeTimeout)
	defer cancel()
	identity, err := idp.Exchange(exchangeCtx, code)
	if err != nil {
		return nil, apperror.BadUpstream("Identity provider exchange failed", err)
	}
	if identity.Email == "" || identity.SubjectID == "" {
		return nil, apperror.BadUpstream("Identity provider response is missing required claims", nil)
	}

	user, err := u.userRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		// First federated login provisions a candidate account.
		user = &domain.User{
			Email:        identity.Email,
			Role:         domain.RoleCandidate,
			AuthProvider: provider,
			SocialID:     &identity.SubjectID,
			DisplayName:  identity.Name,
		}
		if _, err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
			return nil, err
		}
	} else {
		// Existing accounts get linkage fields only; role and profile are
		// never changed by a federated login.
		if err := u.userRepo.UpdateProviderLink(ctx, user.ID, provider, identity.SubjectID); err != nil {
			return nil, err
		}
	}

	token, err := u.jwt.GenerateTokenWithExpiry(user.ID, user.ProfileID, string(user.Role), user.DisplayName, u.cfg.SocialTokenExpiry)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{Token: token, User: user}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("New password must be at least 8 characters")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	if !user.HasLocalPassword() || !auth.CheckPassword(*user.PasswordHash, oldPassword) {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.UpdatePasswordHash(ctx, userID, hash)
}

// RequestPasswordReset never discloses whether the email exists; the handler
// returns the same generic message on every path.
func (u *authUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return apperror.Internal(err)
	}
	rawToken := hex.EncodeToString(raw)

	// Only the one-way hash is stored; the raw token exists solely in the
	// delivered email.
	if err := u.userRepo.SetResetToken(ctx, user.ID, hashToken(rawToken), time.Now().Add(u.cfg.ResetTokenTTL)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", u.cfg.FrontendURL, rawToken)
	if err := u.notifier.SendPasswordReset(ctx, user.Email, user.DisplayName, resetURL); err != nil {
		// Swallowed: failing here would leak account existence through the
		// response. The token simply expires unused.
		logger.Log.Error("password reset mail failed", "error", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("New password must be at least 8 characters")
	}

	user, err := u.userRepo.GetByResetTokenHash(ctx, hashToken(rawToken))
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.BadRequest("Reset token is invalid or expired")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	return u.userRepo.ResetPassword(ctx, user.ID, hash)
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
