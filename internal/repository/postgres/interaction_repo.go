package postgres

import (
	"context"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type interactionRepo struct {
	db *pgxpool.Pool
}

func NewInteractionRepository(db *pgxpool.Pool) domain.InteractionRepository {
	return &interactionRepo{db: db}
}

func (r *interactionRepo) Create(ctx context.Context, companyProfileID, studentProfileID int64) (*domain.Interaction, error) {
	query := `
		INSERT INTO interactions (company_profile_id, student_profile_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, company_profile_id, student_profile_id, created_at`
	var i domain.Interaction
	err := r.db.QueryRow(ctx, query, companyProfileID, studentProfileID).Scan(
		&i.ID, &i.CompanyProfileID, &i.StudentProfileID, &i.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict(apperror.KindDuplicateInteraction, "You have already expressed interest in this candidate")
		}
		return nil, apperror.Internal(err)
	}
	return &i, nil
}

func (r *interactionRepo) ListByCandidate(ctx context.Context, candidateProfileID int64) ([]domain.CandidateInterest, error) {
	query := `
		SELECT i.id, i.company_profile_id, i.student_profile_id, i.created_at,
			co.id, co.company_name, co.logo_url, co.recruiter_name
		FROM interactions i
		JOIN company_profiles co ON co.id = i.company_profile_id
		WHERE i.student_profile_id = $1
		ORDER BY i.created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.CandidateInterest{}
	for rows.Next() {
		var rec domain.CandidateInterest
		err := rows.Scan(
			&rec.Interaction.ID, &rec.Interaction.CompanyProfileID, &rec.Interaction.StudentProfileID, &rec.Interaction.CreatedAt,
			&rec.Company.ProfileID, &rec.Company.CompanyName, &rec.Company.LogoURL, &rec.Company.RecruiterName,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *interactionRepo) ListByCompany(ctx context.Context, companyProfileID int64) ([]domain.CompanyInterest, error) {
	query := `
		SELECT i.id, i.company_profile_id, i.student_profile_id, i.created_at,
			cp.id, cp.full_name, cp.desired_position, cp.photo_url
		FROM interactions i
		JOIN candidate_profiles cp ON cp.id = i.student_profile_id
		WHERE i.company_profile_id = $1
		ORDER BY i.created_at DESC`
	rows, err := r.db.Query(ctx, query, companyProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.CompanyInterest{}
	for rows.Next() {
		var rec domain.CompanyInterest
		err := rows.Scan(
			&rec.Interaction.ID, &rec.Interaction.CompanyProfileID, &rec.Interaction.StudentProfileID, &rec.Interaction.CreatedAt,
			&rec.Candidate.ProfileID, &rec.Candidate.FullName, &rec.Candidate.DesiredPosition, &rec.Candidate.PhotoURL,
		)
		if err != nil {
			return nil, err
		}
		rec.Candidate.Skills = []domain.RatedSkill{}
		result = append(result, rec)
	}
	return result, rows.Err()
}
