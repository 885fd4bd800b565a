package usecase_test

import (
	"context"
	"testing"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"
	"go-internmatch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationUC(appRepo *MockApplicationRepo, companyRepo *MockCompanyRepo) domain.ApplicationUsecase {
	return usecase.NewApplicationUsecase(appRepo, companyRepo, validator.New())
}

func strPtr(s string) *string { return &s }

func TestSubmitApplication(t *testing.T) {
	t.Run("Should require a position", func(t *testing.T) {
		uc := newApplicationUC(new(MockApplicationRepo), new(MockCompanyRepo))
		_, err := uc.Submit(context.Background(), 1, domain.SubmitApplicationInput{})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindValidation, appErrKind(t, err))
	})

	t.Run("Should resolve the sole company when none is given", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetFirst", mock.Anything).Return(&domain.CompanyProfile{ID: 8}, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Submit", mock.Anything, mock.MatchedBy(func(app *domain.InternshipApplication) bool {
			return app.CompanyProfileID == 8 && app.CandidateProfileID == 1 && app.Position == "Backend Intern"
		})).Return(nil)

		uc := newApplicationUC(appRepo, companyRepo)
		app, err := uc.Submit(context.Background(), 1, domain.SubmitApplicationInput{
			Position:  "Backend Intern",
			StartDate: strPtr("2026-06-01"),
			EndDate:   strPtr("not a date"), // coerces to nil, never fails
		})
		assert.NoError(t, err)
		assert.NotNil(t, app.StartDate)
		assert.Nil(t, app.EndDate)
		appRepo.AssertExpectations(t)
	})

	t.Run("Should fail with NotFound when no company exists", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetFirst", mock.Anything).Return(nil, nil)

		uc := newApplicationUC(new(MockApplicationRepo), companyRepo)
		_, err := uc.Submit(context.Background(), 1, domain.SubmitApplicationInput{Position: "Intern"})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, appErrKind(t, err))
	})

	t.Run("Should use the explicit company when given", func(t *testing.T) {
		companyID := int64(3)
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, companyID).Return(&domain.CompanyProfile{ID: companyID}, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Submit", mock.Anything, mock.MatchedBy(func(app *domain.InternshipApplication) bool {
			return app.CompanyProfileID == companyID
		})).Return(nil)

		uc := newApplicationUC(appRepo, companyRepo)
		_, err := uc.Submit(context.Background(), 1, domain.SubmitApplicationInput{
			CompanyProfileID: &companyID,
			Position:         "Intern",
		})
		assert.NoError(t, err)
		companyRepo.AssertNotCalled(t, "GetFirst")
	})

	t.Run("Should surface concurrent duplicates as the typed conflict", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetFirst", mock.Anything).Return(&domain.CompanyProfile{ID: 8}, nil)

		appRepo := new(MockApplicationRepo)
		appRepo.On("Submit", mock.Anything, mock.Anything).
			Return(apperror.Conflict(apperror.KindDuplicateApplication, "Application already submitted"))

		uc := newApplicationUC(appRepo, companyRepo)
		_, err := uc.Submit(context.Background(), 1, domain.SubmitApplicationInput{Position: "Intern"})
		assert.Error(t, err)
		assert.Equal(t, apperror.KindDuplicateApplication, appErrKind(t, err))
	})
}

func TestGetMyApplication(t *testing.T) {
	t.Run("Should return NotFound before any submission", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByCandidate", mock.Anything, int64(1)).Return(nil, nil)

		uc := newApplicationUC(appRepo, new(MockCompanyRepo))
		_, err := uc.GetMine(context.Background(), 1)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, appErrKind(t, err))
	})

	t.Run("Should return the stored application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByCandidate", mock.Anything, int64(1)).
			Return(&domain.InternshipApplication{ID: 4, Position: "Backend Intern"}, nil)

		uc := newApplicationUC(appRepo, new(MockCompanyRepo))
		app, err := uc.GetMine(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Backend Intern", app.Position)
	})
}
