package postgres

import (
	"context"
	"errors"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// userColumns joins the role-matching profile so every read carries the
// linked profile id.
const userColumns = `
	u.id, u.email, u.password_hash, u.role, u.auth_provider, u.social_id,
	u.display_name, u.reset_token_hash, u.reset_token_expires_at,
	u.created_at, u.updated_at,
	COALESCE(cp.id, co.id, 0)`

const userJoin = `
	FROM users u
	LEFT JOIN candidate_profiles cp ON cp.user_id = u.id
	LEFT JOIN company_profiles co ON co.user_id = u.id`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.AuthProvider, &u.SocialID,
		&u.DisplayName, &u.ResetTokenHash, &u.ResetTokenExpiresAt,
		&u.CreatedAt, &u.UpdatedAt,
		&u.ProfileID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	userQuery := `
		INSERT INTO users (email, password_hash, role, auth_provider, social_id, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, userQuery,
		user.Email, user.PasswordHash, user.Role, user.AuthProvider, user.SocialID, user.DisplayName,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperror.Conflict(apperror.KindConflict, "An account with this email already exists")
		}
		return 0, apperror.Internal(err)
	}

	var profileID int64
	switch user.Role {
	case domain.RoleCandidate:
		err = tx.QueryRow(ctx,
			`INSERT INTO candidate_profiles (user_id, full_name, contact_email) VALUES ($1, $2, $3) RETURNING id`,
			user.ID, user.DisplayName, user.Email,
		).Scan(&profileID)
	case domain.RoleCompany:
		err = tx.QueryRow(ctx,
			`INSERT INTO company_profiles (user_id, company_name) VALUES ($1, $2) RETURNING id`,
			user.ID, user.DisplayName,
		).Scan(&profileID)
	default:
		return 0, apperror.Forbidden("Role cannot be registered")
	}
	if err != nil {
		return 0, apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.Internal(err)
	}
	user.ProfileID = profileID
	return profileID, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + ` WHERE u.id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + ` WHERE u.email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) UpdateProviderLink(ctx context.Context, userID int64, provider, socialID string) error {
	query := `UPDATE users SET auth_provider = $2, social_id = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, provider, socialID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, hash)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) SetResetToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token_hash = $2, reset_token_expires_at = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, tokenHash, expiresAt)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	query := `SELECT ` + userColumns + userJoin + `
		WHERE u.reset_token_hash = $1 AND u.reset_token_expires_at > NOW()`
	return scanUser(r.db.QueryRow(ctx, query, tokenHash))
}

func (r *userRepo) ResetPassword(ctx context.Context, userID int64, newHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_token_hash = NULL, reset_token_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, userID, newHash)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
