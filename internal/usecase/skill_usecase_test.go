package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"
	"go-internmatch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func detailsFixture(profileID int64) *domain.CandidateDetails {
	return &domain.CandidateDetails{
		Profile: domain.CandidateProfile{ID: profileID, FullName: "Somchai"},
	}
}

func TestReplaceSkillSet(t *testing.T) {
	t.Run("Should reject a missing list", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo), new(MockCandidateRepo), nil)
		_, err := uc.ReplaceSkillSet(context.Background(), 1, nil)
		assert.Error(t, err)
		assert.Equal(t, "skills must be a list", err.Error())
	})

	t.Run("Should accept an empty list and clear all skills", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ReplaceForCandidate", mock.Anything, int64(1), []domain.RatedSkillInput{}).
			Return([]domain.RatedSkill{}, nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetDetails", mock.Anything, int64(1)).Return(detailsFixture(1), nil)

		uc := usecase.NewSkillUsecase(skillRepo, candidateRepo, nil)
		details, err := uc.ReplaceSkillSet(context.Background(), 1, []domain.SkillInput{})
		assert.NoError(t, err)
		assert.Empty(t, details.Skills)
		skillRepo.AssertExpectations(t)
	})

	t.Run("Should skip blank names and coerce ratings", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ReplaceForCandidate", mock.Anything, int64(1), []domain.RatedSkillInput{
			{Name: "Go", Rating: 7},
			{Name: "SQL", Rating: 1},  // unparseable string floors to 1
			{Name: "Vue", Rating: 10}, // clamped from 12
		}).Return([]domain.RatedSkill{
			{SkillID: 1, Name: "Vue", Rating: 10},
			{SkillID: 2, Name: "Go", Rating: 7},
			{SkillID: 3, Name: "SQL", Rating: 1},
		}, nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetDetails", mock.Anything, int64(1)).Return(detailsFixture(1), nil)

		uc := usecase.NewSkillUsecase(skillRepo, candidateRepo, nil)
		details, err := uc.ReplaceSkillSet(context.Background(), 1, []domain.SkillInput{
			{Name: "Go", Rating: float64(7)},
			{Name: "   ", Rating: float64(5)},
			{Name: "SQL", Rating: "not a number"},
			{Name: "Vue", Rating: float64(12)},
		})
		assert.NoError(t, err)
		assert.Len(t, details.Skills, 3)
		skillRepo.AssertExpectations(t)
	})

	t.Run("Should dedup case-variants within one submission, last rating wins", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ReplaceForCandidate", mock.Anything, int64(1), []domain.RatedSkillInput{
			{Name: "golang", Rating: 9},
		}).Return([]domain.RatedSkill{{SkillID: 1, Name: "golang", Rating: 9}}, nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetDetails", mock.Anything, int64(1)).Return(detailsFixture(1), nil)

		uc := usecase.NewSkillUsecase(skillRepo, candidateRepo, nil)
		_, err := uc.ReplaceSkillSet(context.Background(), 1, []domain.SkillInput{
			{Name: "golang", Rating: float64(3)},
			{Name: "GoLang", Rating: float64(9)},
		})
		assert.NoError(t, err)
		skillRepo.AssertExpectations(t)
	})

	t.Run("Should propagate repository failures", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		skillRepo.On("ReplaceForCandidate", mock.Anything, int64(1), mock.Anything).
			Return(nil, apperror.Internal(errors.New("tx failed")))

		uc := usecase.NewSkillUsecase(skillRepo, new(MockCandidateRepo), nil)
		_, err := uc.ReplaceSkillSet(context.Background(), 1, []domain.SkillInput{{Name: "Go"}})
		assert.Error(t, err)
	})
}

func TestSuggest(t *testing.T) {
	t.Run("Should return empty for blank text", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo), new(MockCandidateRepo), new(MockSuggester))
		out, err := uc.Suggest(context.Background(), "   ")
		assert.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Should degrade to empty without a configured suggester", func(t *testing.T) {
		uc := usecase.NewSkillUsecase(new(MockSkillRepo), new(MockCandidateRepo), nil)
		out, err := uc.Suggest(context.Background(), "backend developer")
		assert.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("Should degrade to empty when the suggester fails", func(t *testing.T) {
		suggester := new(MockSuggester)
		suggester.On("Suggest", mock.Anything, "backend developer").Return(nil, errors.New("upstream timeout"))

		uc := usecase.NewSkillUsecase(new(MockSkillRepo), new(MockCandidateRepo), suggester)
		out, err := uc.Suggest(context.Background(), "backend developer")
		assert.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Should pass suggestions through", func(t *testing.T) {
		suggester := new(MockSuggester)
		suggester.On("Suggest", mock.Anything, "backend developer").Return([]domain.SkillSuggestion{
			{Name: "Go", Rating: 8},
			{Name: "PostgreSQL"},
		}, nil)

		uc := usecase.NewSkillUsecase(new(MockSkillRepo), new(MockCandidateRepo), suggester)
		out, err := uc.Suggest(context.Background(), "backend developer")
		assert.NoError(t, err)
		assert.Len(t, out, 2)
	})
}
