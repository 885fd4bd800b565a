package usecase_test

import (
	"context"
	"testing"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"
	"go-internmatch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompanyProfile(t *testing.T) {
	t.Run("Should return NotFound for a missing profile", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)
		uc := usecase.NewCompanyUsecase(repo)

		_, err := uc.GetMyProfile(context.Background(), 9)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, appErrKind(t, err))
	})

	t.Run("Should force the profile id from the principal", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.CompanyProfile) bool {
			return p.ID == 2
		})).Return(nil)
		repo.On("GetByID", mock.Anything, int64(2)).Return(companyFixture(), nil)
		uc := usecase.NewCompanyUsecase(repo)

		_, err := uc.UpdateMyProfile(context.Background(), 2, &domain.CompanyProfile{
			ID:          999, // body value must be ignored
			CompanyName: "Acme",
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should require a company name", func(t *testing.T) {
		uc := usecase.NewCompanyUsecase(new(MockCompanyRepo))
		_, err := uc.UpdateMyProfile(context.Background(), 2, &domain.CompanyProfile{})
		assert.Error(t, err)
	})

	t.Run("Should replace contact lists wholesale", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ReplaceEmails", mock.Anything, int64(2), []string{"a@acme.example", "b@acme.example"}).
			Return([]domain.CompanyEmail{{Email: "a@acme.example"}, {Email: "b@acme.example"}}, nil)
		uc := usecase.NewCompanyUsecase(repo)

		emails, err := uc.ReplaceEmails(context.Background(), 2, []string{"a@acme.example", "b@acme.example"})
		assert.NoError(t, err)
		assert.Len(t, emails, 2)
	})
}
