package domain

import (
	"context"
	"time"
)

// Interaction records a company's expressed interest in a candidate.
// Created once per (company, candidate) pair, never updated or deleted.
type Interaction struct {
	ID               int64     `json:"id"`
	CompanyProfileID int64     `json:"company_profile_id"`
	StudentProfileID int64     `json:"student_profile_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// CandidateInterest is an interaction joined with the counterpart company,
// shown to candidates.
type CandidateInterest struct {
	Interaction Interaction    `json:"interaction"`
	Company     CompanySummary `json:"company"`
}

// CompanyInterest is an interaction joined with the counterpart candidate,
// shown to companies.
type CompanyInterest struct {
	Interaction Interaction      `json:"interaction"`
	Candidate   CandidateSummary `json:"candidate"`
}

type InteractionRepository interface {
	// Create inserts the pair row; a uniqueness violation surfaces as a
	// typed duplicate-interaction conflict.
	Create(ctx context.Context, companyProfileID, studentProfileID int64) (*Interaction, error)
	ListByCandidate(ctx context.Context, candidateProfileID int64) ([]CandidateInterest, error)
	ListByCompany(ctx context.Context, companyProfileID int64) ([]CompanyInterest, error)
}

// InterestNotification carries the contact-disclosure content handed to the
// notifier after an interaction is recorded.
type InterestNotification struct {
	CandidateEmail    string
	CandidateName     string
	CompanyName       string
	RecruiterName     string
	RecruiterPosition string
	Emails            []string
	Phones            []string
	AdditionalContact string
}

// Notifier is the external delivery collaborator (email). Failures are
// best-effort territory for interest notices and must never reach callers.
type Notifier interface {
	SendInterestNotice(ctx context.Context, n InterestNotification) error
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error
}

// MessagingPusher pushes short notices through a chat provider to candidates
// with a linked messaging identity.
type MessagingPusher interface {
	PushText(ctx context.Context, recipientID, text string) error
}

type InteractionUsecase interface {
	ExpressInterest(ctx context.Context, companyProfileID, studentProfileID int64) (*Interaction, error)
	ListMyInterests(ctx context.Context, candidateProfileID int64) ([]CandidateInterest, error)
	ListInterestedCandidates(ctx context.Context, companyProfileID int64) ([]CompanyInterest, error)
}
