package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/logger"
)

const suggestTimeout = 8 * time.Second

type skillUsecase struct {
	skillRepo     domain.SkillRepository
	candidateRepo domain.CandidateRepository
	suggester     domain.SkillSuggester
}

func NewSkillUsecase(skillRepo domain.SkillRepository, candidateRepo domain.CandidateRepository, suggester domain.SkillSuggester) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:     skillRepo,
		candidateRepo: candidateRepo,
		suggester:     suggester,
	}
}

// ReplaceSkillSet swaps the candidate's whole rated set for the submitted
// one. The UI always submits the full desired set, so a destructive
// delete-then-rebuild is simpler than diffing adds, removes and edits.
func (u *skillUsecase) ReplaceSkillSet(ctx context.Context, profileID int64, skills []domain.SkillInput) (*domain.CandidateDetails, error) {
	if skills == nil {
		return nil, apperror.BadRequest("skills must be a list")
	}

	coerced := make([]domain.RatedSkillInput, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, in := range skills {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			// Blank names are skipped, not an error.
			continue
		}
		// Within one submission the last case-variant wins; across the
		// catalog the stored upsert dedups.
		key := strings.ToLower(name)
		if seen[key] {
			for i := range coerced {
				if strings.EqualFold(coerced[i].Name, name) {
					coerced[i].Rating = coerceRating(in.Rating)
				}
			}
			continue
		}
		seen[key] = true
		coerced = append(coerced, domain.RatedSkillInput{Name: name, Rating: coerceRating(in.Rating)})
	}

	rated, err := u.skillRepo.ReplaceForCandidate(ctx, profileID, coerced)
	if err != nil {
		return nil, err
	}

	details, err := u.candidateRepo.GetDetails(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if details == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	details.Skills = rated
	return details, nil
}

// Suggest asks the external collaborator for skill suggestions. A timeout or
// failure degrades to an empty list rather than failing the surrounding
// profile view.
func (u *skillUsecase) Suggest(ctx context.Context, text string) ([]domain.SkillSuggestion, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.SkillSuggestion{}, nil
	}
	if u.suggester == nil {
		return []domain.SkillSuggestion{}, nil
	}

	suggestCtx, cancel := context.WithTimeout(ctx, suggestTimeout)
	defer cancel()
	suggestions, err := u.suggester.Suggest(suggestCtx, text)
	if err != nil {
		logger.Log.Warn("skill suggestion degraded to empty", "error", err)
		return []domain.SkillSuggestion{}, nil
	}
	if suggestions == nil {
		suggestions = []domain.SkillSuggestion{}
	}
	return suggestions, nil
}

// coerceRating parses whatever the client sent as a rating. Unparseable or
// non-positive values fall back to 1, never 0 or negative.
func coerceRating(v any) int {
	var rating int
	switch n := v.(type) {
	case float64:
		rating = int(n)
	case int:
		rating = n
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			rating = 0
		} else {
			rating = parsed
		}
	}
	if rating < 1 {
		return 1
	}
	if rating > 10 {
		return 10
	}
	return rating
}
