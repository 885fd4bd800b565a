package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `
	id, user_id, company_name, description, registration_number, website,
	industry, recruiter_name, recruiter_position, additional_contact,
	logo_url, created_at, updated_at`

func (r *companyRepo) getOne(ctx context.Context, where string, arg any) (*domain.CompanyProfile, error) {
	query := `SELECT ` + companyColumns + ` FROM company_profiles ` + where
	var p domain.CompanyProfile
	var row pgx.Row
	if arg != nil {
		row = r.db.QueryRow(ctx, query, arg)
	} else {
		row = r.db.QueryRow(ctx, query)
	}
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Description, &p.RegistrationNumber, &p.Website,
		&p.Industry, &p.RecruiterName, &p.RecruiterPosition, &p.AdditionalContact,
		&p.LogoURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadContacts(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *companyRepo) loadContacts(ctx context.Context, p *domain.CompanyProfile) error {
	p.Emails = []domain.CompanyEmail{}
	p.Phones = []domain.CompanyPhone{}

	eRows, err := r.db.Query(ctx,
		`SELECT id, company_profile_id, email FROM company_emails WHERE company_profile_id = $1 ORDER BY id`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch company emails: %w", err)
	}
	defer eRows.Close()
	for eRows.Next() {
		var e domain.CompanyEmail
		if err := eRows.Scan(&e.ID, &e.CompanyProfileID, &e.Email); err != nil {
			return err
		}
		p.Emails = append(p.Emails, e)
	}

	pRows, err := r.db.Query(ctx,
		`SELECT id, company_profile_id, phone FROM company_phones WHERE company_profile_id = $1 ORDER BY id`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch company phones: %w", err)
	}
	defer pRows.Close()
	for pRows.Next() {
		var ph domain.CompanyPhone
		if err := pRows.Scan(&ph.ID, &ph.CompanyProfileID, &ph.Phone); err != nil {
			return err
		}
		p.Phones = append(p.Phones, ph)
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, profileID int64) (*domain.CompanyProfile, error) {
	return r.getOne(ctx, `WHERE id = $1`, profileID)
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CompanyProfile, error) {
	return r.getOne(ctx, `WHERE user_id = $1`, userID)
}

func (r *companyRepo) GetFirst(ctx context.Context) (*domain.CompanyProfile, error) {
	return r.getOne(ctx, `ORDER BY id LIMIT 1`, nil)
}

func (r *companyRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `
		UPDATE company_profiles SET
			company_name = $2, description = $3, registration_number = $4,
			website = $5, industry = $6, recruiter_name = $7,
			recruiter_position = $8, additional_contact = $9, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.Description, profile.RegistrationNumber,
		profile.Website, profile.Industry, profile.RecruiterName,
		profile.RecruiterPosition, profile.AdditionalContact,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Company profile not found")
	}
	return nil
}

func (r *companyRepo) UpdateLogo(ctx context.Context, profileID int64, url string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE company_profiles SET logo_url = $2, updated_at = NOW() WHERE id = $1`, profileID, url)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Company profile not found")
	}
	return nil
}

func (r *companyRepo) ReplaceEmails(ctx context.Context, profileID int64, emails []string) ([]domain.CompanyEmail, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM company_emails WHERE company_profile_id = $1`, profileID); err != nil {
		return nil, apperror.Internal(err)
	}

	result := []domain.CompanyEmail{}
	for _, email := range emails {
		if email == "" {
			continue
		}
		var e domain.CompanyEmail
		err := tx.QueryRow(ctx,
			`INSERT INTO company_emails (company_profile_id, email) VALUES ($1, $2) RETURNING id, company_profile_id, email`,
			profileID, email,
		).Scan(&e.ID, &e.CompanyProfileID, &e.Email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		result = append(result, e)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}

func (r *companyRepo) ReplacePhones(ctx context.Context, profileID int64, phones []string) ([]domain.CompanyPhone, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM company_phones WHERE company_profile_id = $1`, profileID); err != nil {
		return nil, apperror.Internal(err)
	}

	result := []domain.CompanyPhone{}
	for _, phone := range phones {
		if phone == "" {
			continue
		}
		var p domain.CompanyPhone
		err := tx.QueryRow(ctx,
			`INSERT INTO company_phones (company_profile_id, phone) VALUES ($1, $2) RETURNING id, company_profile_id, phone`,
			profileID, phone,
		).Scan(&p.ID, &p.CompanyProfileID, &p.Phone)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		result = append(result, p)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}
