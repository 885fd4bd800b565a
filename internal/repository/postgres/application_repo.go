package postgres

import (
	"context"
	"errors"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Submit writes the desired position onto the profile and upserts the
// application row in the same transaction. A partial failure rolls both
// back; no intermediate state is ever visible.
func (r *applicationRepo) Submit(ctx context.Context, app *domain.InternshipApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE candidate_profiles SET desired_position = $2, updated_at = NOW() WHERE id = $1`,
		app.CandidateProfileID, app.Position,
	)
	if err != nil {
		return apperror.Internal(err)
	}

	upsert := `
		INSERT INTO internship_applications
			(candidate_profile_id, company_profile_id, position, start_date, end_date, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (candidate_profile_id, company_profile_id) DO UPDATE SET
			position = EXCLUDED.position,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			reason = EXCLUDED.reason,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, upsert,
		app.CandidateProfileID, app.CompanyProfileID, app.Position,
		app.StartDate, app.EndDate, app.Reason,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		// The upsert normally absorbs duplicates; a 23505 can still escape
		// under a concurrent insert racing the same pair.
		if isUniqueViolation(err) {
			return apperror.Conflict(apperror.KindDuplicateApplication, "Application already submitted")
		}
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) GetByCandidate(ctx context.Context, candidateProfileID int64) (*domain.InternshipApplication, error) {
	query := `
		SELECT id, candidate_profile_id, company_profile_id, position, start_date, end_date, reason, created_at, updated_at
		FROM internship_applications WHERE candidate_profile_id = $1`
	var app domain.InternshipApplication
	err := r.db.QueryRow(ctx, query, candidateProfileID).Scan(
		&app.ID, &app.CandidateProfileID, &app.CompanyProfileID, &app.Position,
		&app.StartDate, &app.EndDate, &app.Reason, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}
