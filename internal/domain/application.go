package domain

import (
	"context"
	"time"
)

// InternshipApplication relates one candidate to one company, at most one
// row per pair. Repeated submissions update the row in place.
type InternshipApplication struct {
	ID                 int64      `json:"id"`
	CandidateProfileID int64      `json:"candidate_profile_id"`
	CompanyProfileID   int64      `json:"company_profile_id"`
	Position           string     `json:"position"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	Reason             *string    `json:"reason"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type SubmitApplicationInput struct {
	// CompanyProfileID may be omitted; the sole registered company is then
	// resolved as the target.
	CompanyProfileID *int64  `json:"company_profile_id"`
	Position         string  `json:"position" validate:"required,max=160"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	Reason           *string `json:"reason"`
}

type ApplicationRepository interface {
	// Submit runs one transaction that writes the candidate's desired
	// position and upserts the application row; both commit or neither
	// does. A concurrent duplicate insert surfaces as a typed conflict.
	Submit(ctx context.Context, app *InternshipApplication) error
	GetByCandidate(ctx context.Context, candidateProfileID int64) (*InternshipApplication, error)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, candidateProfileID int64, input SubmitApplicationInput) (*InternshipApplication, error)
	GetMine(ctx context.Context, candidateProfileID int64) (*InternshipApplication, error)
}
