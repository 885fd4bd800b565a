package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

// updatableColumns whitelists what a profile patch may touch. Anything else
// in the incoming map is a validation error upstream.
var updatableColumns = map[string]bool{
	"full_name":        true,
	"contact_email":    true,
	"phone":            true,
	"bio":              true,
	"photo_url":        true,
	"video_intro_url":  true,
	"media_links":      true,
	"desired_position": true,
	"birth_date":       true,
	"gpa":              true,
	"line_user_id":     true,
}

// IsUpdatableColumn reports whether a patch key maps to a writable profile
// column.
func IsUpdatableColumn(key string) bool {
	return updatableColumns[key]
}

const candidateColumns = `
	id, user_id, full_name, contact_email, phone, bio, photo_url,
	video_intro_url, media_links, desired_position, birth_date, gpa,
	line_user_id, created_at, updated_at`

func scanCandidate(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	var mediaLinks []string
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.ContactEmail, &p.Phone, &p.Bio, &p.PhotoURL,
		&p.VideoIntroURL, pq.Array(&mediaLinks), &p.DesiredPosition, &p.BirthDate, &p.GPA,
		&p.LineUserID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.MediaLinks = mediaLinks
	return &p, nil
}

func (r *candidateRepo) GetByID(ctx context.Context, profileID int64) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, profileID))
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`
	return scanCandidate(r.db.QueryRow(ctx, query, userID))
}

func (r *candidateRepo) GetDetails(ctx context.Context, profileID int64) (*domain.CandidateDetails, error) {
	profile, err := r.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	result := &domain.CandidateDetails{
		Profile:          *profile,
		Skills:           []domain.RatedSkill{},
		WorkHistories:    []domain.WorkHistory{},
		CertificateFiles: []domain.CertificateFile{},
		ContactFiles:     []domain.ContactFile{},
	}

	skillsQuery := `
		SELECT s.id, s.name, us.rating
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.candidate_profile_id = $1
		ORDER BY us.rating DESC, s.name`
	rows, err := r.db.Query(ctx, skillsQuery, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s domain.RatedSkill
		if err := rows.Scan(&s.SkillID, &s.Name, &s.Rating); err != nil {
			return nil, err
		}
		result.Skills = append(result.Skills, s)
	}

	workQuery := `
		SELECT id, candidate_profile_id, company_name, position, start_date, end_date, description
		FROM work_histories WHERE candidate_profile_id = $1
		ORDER BY start_date DESC NULLS LAST, id DESC`
	wRows, err := r.db.Query(ctx, workQuery, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work histories: %w", err)
	}
	defer wRows.Close()
	for wRows.Next() {
		var w domain.WorkHistory
		if err := wRows.Scan(&w.ID, &w.CandidateProfileID, &w.CompanyName, &w.Position, &w.StartDate, &w.EndDate, &w.Description); err != nil {
			return nil, err
		}
		result.WorkHistories = append(result.WorkHistories, w)
	}

	certQuery := `
		SELECT id, candidate_profile_id, name, url, mime_type, description
		FROM certificate_files WHERE candidate_profile_id = $1 ORDER BY id`
	cRows, err := r.db.Query(ctx, certQuery, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch certificate files: %w", err)
	}
	defer cRows.Close()
	for cRows.Next() {
		var f domain.CertificateFile
		if err := cRows.Scan(&f.ID, &f.CandidateProfileID, &f.Name, &f.URL, &f.MimeType, &f.Description); err != nil {
			return nil, err
		}
		result.CertificateFiles = append(result.CertificateFiles, f)
	}

	contactQuery := `
		SELECT id, candidate_profile_id, name, url, mime_type
		FROM contact_files WHERE candidate_profile_id = $1 ORDER BY id`
	fRows, err := r.db.Query(ctx, contactQuery, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact files: %w", err)
	}
	defer fRows.Close()
	for fRows.Next() {
		var f domain.ContactFile
		if err := fRows.Scan(&f.ID, &f.CandidateProfileID, &f.Name, &f.URL, &f.MimeType); err != nil {
			return nil, err
		}
		result.ContactFiles = append(result.ContactFiles, f)
	}

	// Current application is derived from the relation, not from profile
	// columns.
	appQuery := `
		SELECT id, candidate_profile_id, company_profile_id, position, start_date, end_date, reason, created_at, updated_at
		FROM internship_applications WHERE candidate_profile_id = $1`
	var app domain.InternshipApplication
	err = r.db.QueryRow(ctx, appQuery, profileID).Scan(
		&app.ID, &app.CandidateProfileID, &app.CompanyProfileID, &app.Position,
		&app.StartDate, &app.EndDate, &app.Reason, &app.CreatedAt, &app.UpdatedAt,
	)
	if err == nil {
		result.Application = &app
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to fetch application: %w", err)
	}

	return result, nil
}

func (r *candidateRepo) UpdateFields(ctx context.Context, profileID int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	setClauses := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	args = append(args, profileID)

	for col, val := range fields {
		if !updatableColumns[col] {
			return apperror.BadRequest(fmt.Sprintf("Field %q cannot be updated", col))
		}
		if col == "media_links" {
			if links, ok := val.([]string); ok {
				val = pq.Array(links)
			}
		}
		args = append(args, val)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE candidate_profiles SET %s WHERE id = $1`, strings.Join(setClauses, ", "))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Candidate profile not found")
	}
	return nil
}

func (r *candidateRepo) CreateWorkHistory(ctx context.Context, wh *domain.WorkHistory) error {
	query := `
		INSERT INTO work_histories (candidate_profile_id, company_name, position, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		wh.CandidateProfileID, wh.CompanyName, wh.Position, wh.StartDate, wh.EndDate, wh.Description,
	).Scan(&wh.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) UpdateWorkHistory(ctx context.Context, wh *domain.WorkHistory) error {
	query := `
		UPDATE work_histories
		SET company_name = $2, position = $3, start_date = $4, end_date = $5, description = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query, wh.ID, wh.CompanyName, wh.Position, wh.StartDate, wh.EndDate, wh.Description)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) GetWorkHistory(ctx context.Context, id int64) (*domain.WorkHistory, error) {
	query := `
		SELECT id, candidate_profile_id, company_name, position, start_date, end_date, description
		FROM work_histories WHERE id = $1`
	var w domain.WorkHistory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.CandidateProfileID, &w.CompanyName, &w.Position, &w.StartDate, &w.EndDate, &w.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

func (r *candidateRepo) DeleteWorkHistory(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM work_histories WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) CreateCertificateFile(ctx context.Context, f *domain.CertificateFile) error {
	query := `
		INSERT INTO certificate_files (candidate_profile_id, name, url, mime_type, description)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, query, f.CandidateProfileID, f.Name, f.URL, f.MimeType, f.Description).Scan(&f.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) GetCertificateFile(ctx context.Context, id int64) (*domain.CertificateFile, error) {
	query := `
		SELECT id, candidate_profile_id, name, url, mime_type, description
		FROM certificate_files WHERE id = $1`
	var f domain.CertificateFile
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.CandidateProfileID, &f.Name, &f.URL, &f.MimeType, &f.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *candidateRepo) DeleteCertificateFile(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM certificate_files WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) CreateContactFile(ctx context.Context, f *domain.ContactFile) error {
	query := `
		INSERT INTO contact_files (candidate_profile_id, name, url, mime_type)
		VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, query, f.CandidateProfileID, f.Name, f.URL, f.MimeType).Scan(&f.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *candidateRepo) GetContactFile(ctx context.Context, id int64) (*domain.ContactFile, error) {
	query := `SELECT id, candidate_profile_id, name, url, mime_type FROM contact_files WHERE id = $1`
	var f domain.ContactFile
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.CandidateProfileID, &f.Name, &f.URL, &f.MimeType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *candidateRepo) DeleteContactFile(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contact_files WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Search applies the conjunctive filter. The skill list is exclusionary: a
// candidate is kept only when none of their skills falls outside the list.
func (r *candidateRepo) Search(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]domain.CandidateSummary, int64, error) {
	where := `
		WHERE ($1 = '' OR cp.desired_position ILIKE '%' || $1 || '%')
		AND (cardinality($2::text[]) = 0 OR NOT EXISTS (
			SELECT 1
			FROM user_skills us
			JOIN skills s ON s.id = us.skill_id
			WHERE us.candidate_profile_id = cp.id
			AND lower(s.name) <> ALL (SELECT lower(f) FROM unnest($2::text[]) f)
		))`

	skills := filter.Skills
	if skills == nil {
		skills = []string{}
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM candidate_profiles cp` + where
	if err := r.db.QueryRow(ctx, countQuery, filter.Position, pq.Array(skills)).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT cp.id, cp.full_name, cp.desired_position, cp.photo_url
		FROM candidate_profiles cp` + where + `
		ORDER BY cp.updated_at DESC, cp.id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, filter.Position, pq.Array(skills), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	summaries := []domain.CandidateSummary{}
	ids := []int64{}
	for rows.Next() {
		var s domain.CandidateSummary
		if err := rows.Scan(&s.ProfileID, &s.FullName, &s.DesiredPosition, &s.PhotoURL); err != nil {
			return nil, 0, err
		}
		s.Skills = []domain.RatedSkill{}
		summaries = append(summaries, s)
		ids = append(ids, s.ProfileID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		skillQuery := `
			SELECT us.candidate_profile_id, s.id, s.name, us.rating
			FROM user_skills us
			JOIN skills s ON s.id = us.skill_id
			WHERE us.candidate_profile_id = ANY($1::bigint[])
			ORDER BY us.rating DESC, s.name`
		sRows, err := r.db.Query(ctx, skillQuery, pq.Array(ids))
		if err != nil {
			return nil, 0, err
		}
		defer sRows.Close()

		byProfile := make(map[int64][]domain.RatedSkill, len(ids))
		for sRows.Next() {
			var profileID int64
			var s domain.RatedSkill
			if err := sRows.Scan(&profileID, &s.SkillID, &s.Name, &s.Rating); err != nil {
				return nil, 0, err
			}
			byProfile[profileID] = append(byProfile[profileID], s)
		}
		for i := range summaries {
			if skills, ok := byProfile[summaries[i].ProfileID]; ok {
				summaries[i].Skills = skills
			}
		}
	}

	return summaries, total, nil
}
