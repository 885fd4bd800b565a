package domain

import (
	"context"
	"time"
)

type CompanyProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	CompanyName        string    `json:"company_name"`
	Description        *string   `json:"description"`
	RegistrationNumber *string   `json:"registration_number"`
	Website            *string   `json:"website"`
	Industry           *string   `json:"industry"`
	RecruiterName      *string   `json:"recruiter_name"`
	RecruiterPosition  *string   `json:"recruiter_position"`
	AdditionalContact  *string   `json:"additional_contact"`
	LogoURL            *string   `json:"logo_url"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Emails []CompanyEmail `json:"emails"`
	Phones []CompanyPhone `json:"phones"`
}

type CompanyEmail struct {
	ID               int64  `json:"id"`
	CompanyProfileID int64  `json:"company_profile_id"`
	Email            string `json:"email"`
}

type CompanyPhone struct {
	ID               int64  `json:"id"`
	CompanyProfileID int64  `json:"company_profile_id"`
	Phone            string `json:"phone"`
}

// CompanySummary is the compact projection shown to candidates in interest
// listings.
type CompanySummary struct {
	ProfileID     int64   `json:"profile_id"`
	CompanyName   string  `json:"company_name"`
	LogoURL       *string `json:"logo_url"`
	RecruiterName *string `json:"recruiter_name"`
}

type CompanyRepository interface {
	// GetByID and GetByUserID load the profile together with its owned
	// email/phone collections.
	GetByID(ctx context.Context, profileID int64) (*CompanyProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*CompanyProfile, error)
	// GetFirst resolves the sole registered company, nil when none exists.
	GetFirst(ctx context.Context) (*CompanyProfile, error)
	Update(ctx context.Context, profile *CompanyProfile) error
	UpdateLogo(ctx context.Context, profileID int64, url string) error
	ReplaceEmails(ctx context.Context, profileID int64, emails []string) ([]CompanyEmail, error)
	ReplacePhones(ctx context.Context, profileID int64, phones []string) ([]CompanyPhone, error)
}

type CompanyUsecase interface {
	GetMyProfile(ctx context.Context, profileID int64) (*CompanyProfile, error)
	UpdateMyProfile(ctx context.Context, profileID int64, profile *CompanyProfile) (*CompanyProfile, error)
	SetLogo(ctx context.Context, profileID int64, url string) error
	ReplaceEmails(ctx context.Context, profileID int64, emails []string) ([]CompanyEmail, error)
	ReplacePhones(ctx context.Context, profileID int64, phones []string) ([]CompanyPhone, error)
}
