package domain

import "context"

// Skill is a global catalog entry shared across candidates, deduplicated by
// name (case-insensitively; the first-seen casing is canonical).
type Skill struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SkillInput is the wire shape of one submitted skill. Rating is untyped on
// purpose: clients send numbers, numeric strings or nothing, and the usecase
// coerces.
type SkillInput struct {
	Name   string `json:"name"`
	Rating any    `json:"rating"`
}

// RatedSkillInput is the coerced form handed to the repository.
type RatedSkillInput struct {
	Name   string
	Rating int
}

type SkillRepository interface {
	// ReplaceForCandidate atomically deletes the candidate's rated skills
	// and rebuilds them, find-or-creating catalog rows by name. Returns the
	// new set ordered by rating descending.
	ReplaceForCandidate(ctx context.Context, profileID int64, skills []RatedSkillInput) ([]RatedSkill, error)
	ListForCandidate(ctx context.Context, profileID int64) ([]RatedSkill, error)
}

// SkillSuggestion is the output shape of the external suggestion
// collaborator. Rating may be zero when the collaborator only ranks names.
type SkillSuggestion struct {
	Name   string `json:"name"`
	Rating int    `json:"rating,omitempty"`
}

// SkillSuggester is the external AI collaborator: given free text, return
// structured skill suggestions. Domain correctness of the suggestions is not
// this system's concern.
type SkillSuggester interface {
	Suggest(ctx context.Context, text string) ([]SkillSuggestion, error)
}

type SkillUsecase interface {
	ReplaceSkillSet(ctx context.Context, profileID int64, skills []SkillInput) (*CandidateDetails, error)
	Suggest(ctx context.Context, text string) ([]SkillSuggestion, error)
}
