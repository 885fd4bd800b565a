package usecase

import (
	"context"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) GetMyProfile(ctx context.Context, profileID int64) (*domain.CompanyProfile, error) {
	profile, err := u.companyRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("Company profile not found")
	}
	return profile, nil
}

func (u *companyUsecase) UpdateMyProfile(ctx context.Context, profileID int64, profile *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	if profile.CompanyName == "" {
		return nil, apperror.BadRequest("Company name is required")
	}
	// The id always comes from the authenticated principal, never the body.
	profile.ID = profileID
	if err := u.companyRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return u.GetMyProfile(ctx, profileID)
}

func (u *companyUsecase) SetLogo(ctx context.Context, profileID int64, url string) error {
	if url == "" {
		return apperror.BadRequest("Logo URL is required")
	}
	return u.companyRepo.UpdateLogo(ctx, profileID, url)
}

func (u *companyUsecase) ReplaceEmails(ctx context.Context, profileID int64, emails []string) ([]domain.CompanyEmail, error) {
	return u.companyRepo.ReplaceEmails(ctx, profileID, emails)
}

func (u *companyUsecase) ReplacePhones(ctx context.Context, profileID int64, phones []string) ([]domain.CompanyPhone, error) {
	return u.companyRepo.ReplacePhones(ctx, profileID, phones)
}
