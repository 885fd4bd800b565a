package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	FullName        string     `json:"full_name"`
	ContactEmail    *string    `json:"contact_email"`
	Phone           *string    `json:"phone"`
	Bio             *string    `json:"bio"`
	PhotoURL        *string    `json:"photo_url"`
	VideoIntroURL   *string    `json:"video_intro_url"`
	MediaLinks      []string   `json:"media_links"`
	DesiredPosition *string    `json:"desired_position"`
	BirthDate       *time.Time `json:"birth_date"`
	GPA             *float64   `json:"gpa"`
	// LineUserID links the candidate to a messaging provider identity used
	// for best-effort push notices.
	LineUserID *string   `json:"line_user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type WorkHistory struct {
	ID                 int64      `json:"id"`
	CandidateProfileID int64      `json:"candidate_profile_id"`
	CompanyName        string     `json:"company_name"`
	Position           string     `json:"position"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	Description        *string    `json:"description"`
}

type CertificateFile struct {
	ID                 int64   `json:"id"`
	CandidateProfileID int64   `json:"candidate_profile_id"`
	Name               string  `json:"name"`
	URL                string  `json:"url"`
	MimeType           string  `json:"mime_type"`
	Description        *string `json:"description"`
}

type ContactFile struct {
	ID                 int64  `json:"id"`
	CandidateProfileID int64  `json:"candidate_profile_id"`
	Name               string `json:"name"`
	URL                string `json:"url"`
	MimeType           string `json:"mime_type"`
}

// RatedSkill is the candidate-facing projection of a catalog skill plus its
// rating for one candidate.
type RatedSkill struct {
	SkillID int64  `json:"skill_id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
}

// CandidateDetails aggregates the profile with its owned collections. The
// current application is derived from the applications relation, never from
// denormalized profile columns.
type CandidateDetails struct {
	Profile          CandidateProfile       `json:"profile"`
	Skills           []RatedSkill           `json:"skills"`
	WorkHistories    []WorkHistory          `json:"work_histories"`
	CertificateFiles []CertificateFile      `json:"certificate_files"`
	ContactFiles     []ContactFile          `json:"contact_files"`
	Application      *InternshipApplication `json:"application,omitempty"`
}

// CandidateSummary is the compact projection used by search results and
// interaction listings.
type CandidateSummary struct {
	ProfileID       int64        `json:"profile_id"`
	FullName        string       `json:"full_name"`
	DesiredPosition *string      `json:"desired_position"`
	PhotoURL        *string      `json:"photo_url"`
	Skills          []RatedSkill `json:"skills"`
}

// SearchFilter is conjunctive. Skills, when present, is exclusionary: a
// candidate matches only if every skill they have appears in the list.
type SearchFilter struct {
	Position string
	Skills   []string
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

type CandidatePage struct {
	Data       []CandidateSummary `json:"data"`
	Pagination Pagination         `json:"pagination"`
}

type CandidateRepository interface {
	GetByID(ctx context.Context, profileID int64) (*CandidateProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*CandidateProfile, error)
	GetDetails(ctx context.Context, profileID int64) (*CandidateDetails, error)
	// UpdateFields applies a sparse column->value map; nil values write NULL.
	// Keys outside the updatable column set must be rejected by the caller.
	UpdateFields(ctx context.Context, profileID int64, fields map[string]any) error

	CreateWorkHistory(ctx context.Context, wh *WorkHistory) error
	UpdateWorkHistory(ctx context.Context, wh *WorkHistory) error
	GetWorkHistory(ctx context.Context, id int64) (*WorkHistory, error)
	DeleteWorkHistory(ctx context.Context, id int64) error

	CreateCertificateFile(ctx context.Context, f *CertificateFile) error
	GetCertificateFile(ctx context.Context, id int64) (*CertificateFile, error)
	DeleteCertificateFile(ctx context.Context, id int64) error
	CreateContactFile(ctx context.Context, f *ContactFile) error
	GetContactFile(ctx context.Context, id int64) (*ContactFile, error)
	DeleteContactFile(ctx context.Context, id int64) error

	Search(ctx context.Context, filter SearchFilter, limit, offset int) ([]CandidateSummary, int64, error)
}

type CandidateUsecase interface {
	GetMyProfile(ctx context.Context, profileID int64) (*CandidateDetails, error)
	// UpdateMyProfile applies partial-update semantics: only keys present in
	// the patch are written, explicit nulls clear.
	UpdateMyProfile(ctx context.Context, profileID int64, patch map[string]any) (*CandidateDetails, error)
	SetAvatar(ctx context.Context, profileID int64, url string) error

	AddWorkHistory(ctx context.Context, profileID int64, wh *WorkHistory) error
	UpdateWorkHistory(ctx context.Context, profileID int64, wh *WorkHistory) error
	DeleteWorkHistory(ctx context.Context, profileID, workHistoryID int64) error

	AddCertificateFile(ctx context.Context, profileID int64, f *CertificateFile) error
	DeleteCertificateFile(ctx context.Context, profileID, fileID int64) error
	AddContactFile(ctx context.Context, profileID int64, f *ContactFile) error
	DeleteContactFile(ctx context.Context, profileID, fileID int64) error

	Search(ctx context.Context, filter SearchFilter, page, limit int) (*CandidatePage, error)
}

// BlobStore is the external byte-storage collaborator. This backend persists
// only references.
type BlobStore interface {
	Put(ctx context.Context, bucket, name string, data []byte, contentType string) (string, error)
}
