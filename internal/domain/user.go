package domain

import (
	"context"
	"time"
)

// Role is the closed set of account roles. Anything outside these three
// values is rejected at the boundary.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleCompany   Role = "COMPANY"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// Auth providers. Local accounts carry a password hash; federated accounts
// may not.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderLine   = "line"
)

type User struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	PasswordHash *string `json:"-"`
	Role         Role    `json:"role"`
	AuthProvider string  `json:"auth_provider"`
	SocialID     *string `json:"-"`
	DisplayName  string  `json:"display_name"`
	// ProfileID is the linked CandidateProfile or CompanyProfile id,
	// resolved by join on read paths.
	ProfileID           int64      `json:"profile_id"`
	ResetTokenHash      *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// HasLocalPassword reports whether the account can authenticate with a
// password at all (federated-only accounts cannot).
func (u *User) HasLocalPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

type UserRepository interface {
	// CreateWithProfile creates the user row and its role-matching profile
	// in one transaction and returns the new profile id. A duplicate email
	// must surface as a typed conflict.
	CreateWithProfile(ctx context.Context, user *User) (int64, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateProviderLink records federated linkage fields only; role and
	// profile are never touched by federated login.
	UpdateProviderLink(ctx context.Context, userID int64, provider, socialID string) error
	UpdatePasswordHash(ctx context.Context, userID int64, hash string) error
	SetResetToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*User, error)
	// ResetPassword sets the new hash and clears the reset fields in one
	// statement.
	ResetPassword(ctx context.Context, userID int64, newHash string) error
}

// FederatedIdentity is the verified claim set an external identity provider
// returns after a successful code exchange.
type FederatedIdentity struct {
	Email     string
	Name      string
	SubjectID string
}

// IdentityProvider exchanges an authorization code with an external provider
// (Google, LINE) for verified identity claims.
type IdentityProvider interface {
	Exchange(ctx context.Context, code string) (*FederatedIdentity, error)
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	FederatedLogin(ctx context.Context, provider, code string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
}
