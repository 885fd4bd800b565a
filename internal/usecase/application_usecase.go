package usecase

import (
	"context"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	companyRepo     domain.CompanyRepository
	validate        *validator.Validate
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	companyRepo domain.CompanyRepository,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		companyRepo:     companyRepo,
		validate:        validate,
	}
}

func (u *applicationUsecase) Submit(ctx context.Context, candidateProfileID int64, input domain.SubmitApplicationInput) (*domain.InternshipApplication, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest("Invalid application data: " + err.Error())
	}

	// Resolve the target company explicitly when given, otherwise fall back
	// to the sole registered company.
	var company *domain.CompanyProfile
	var err error
	if input.CompanyProfileID != nil {
		company, err = u.companyRepo.GetByID(ctx, *input.CompanyProfileID)
	} else {
		company, err = u.companyRepo.GetFirst(ctx)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if company == nil {
		return nil, apperror.NotFound("No company is available to apply to")
	}

	app := &domain.InternshipApplication{
		CandidateProfileID: candidateProfileID,
		CompanyProfileID:   company.ID,
		Position:           input.Position,
		StartDate:          parseOptionalDate(input.StartDate),
		EndDate:            parseOptionalDate(input.EndDate),
		Reason:             input.Reason,
	}
	if err := u.applicationRepo.Submit(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) GetMine(ctx context.Context, candidateProfileID int64) (*domain.InternshipApplication, error) {
	app, err := u.applicationRepo.GetByCandidate(ctx, candidateProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if app == nil {
		return nil, apperror.NotFound("No application submitted yet")
	}
	return app, nil
}

// parseOptionalDate coerces defensively: empty or unparseable dates become
// nil rather than failing the submission.
func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
