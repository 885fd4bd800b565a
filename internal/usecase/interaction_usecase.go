package usecase

import (
	"context"
	"fmt"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/logger"
)

const notifyTimeout = 15 * time.Second

type interactionUsecase struct {
	interactionRepo domain.InteractionRepository
	companyRepo     domain.CompanyRepository
	candidateRepo   domain.CandidateRepository
	notifier        domain.Notifier
	pusher          domain.MessagingPusher
}

func NewInteractionUsecase(
	interactionRepo domain.InteractionRepository,
	companyRepo domain.CompanyRepository,
	candidateRepo domain.CandidateRepository,
	notifier domain.Notifier,
	pusher domain.MessagingPusher,
) domain.InteractionUsecase {
	return &interactionUsecase{
		interactionRepo: interactionRepo,
		companyRepo:     companyRepo,
		candidateRepo:   candidateRepo,
		notifier:        notifier,
		pusher:          pusher,
	}
}

// ExpressInterest records the interaction, then fans out notifications
// best-effort. The interaction row is the durable side effect; notifier
// failures are logged and never reach the caller.
func (u *interactionUsecase) ExpressInterest(ctx context.Context, companyProfileID, studentProfileID int64) (*domain.Interaction, error) {
	company, err := u.companyRepo.GetByID(ctx, companyProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if company == nil {
		return nil, apperror.NotFound("Company profile not found")
	}

	candidate, err := u.candidateRepo.GetByID(ctx, studentProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	interaction, err := u.interactionRepo.Create(ctx, companyProfileID, studentProfileID)
	if err != nil {
		return nil, err
	}

	u.notifyAsync(company, candidate)
	return interaction, nil
}

// notifyAsync runs detached from the request: the interaction has already
// committed and a slow or failing notifier must not affect the response.
func (u *interactionUsecase) notifyAsync(company *domain.CompanyProfile, candidate *domain.CandidateProfile) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("interest notification panicked", "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if candidate.ContactEmail != nil && *candidate.ContactEmail != "" {
			n := domain.InterestNotification{
				CandidateEmail:    *candidate.ContactEmail,
				CandidateName:     candidate.FullName,
				CompanyName:       company.CompanyName,
				RecruiterName:     deref(company.RecruiterName),
				RecruiterPosition: deref(company.RecruiterPosition),
				AdditionalContact: deref(company.AdditionalContact),
			}
			for _, e := range company.Emails {
				n.Emails = append(n.Emails, e.Email)
			}
			for _, p := range company.Phones {
				n.Phones = append(n.Phones, p.Phone)
			}
			if err := u.notifier.SendInterestNotice(ctx, n); err != nil {
				logger.Log.Error("interest email failed",
					"candidate_profile_id", candidate.ID,
					"company_profile_id", company.ID,
					"error", err)
			}
		}

		if u.pusher != nil && candidate.LineUserID != nil && *candidate.LineUserID != "" {
			text := fmt.Sprintf("%s is interested in your profile. Check your email for their contact details.", company.CompanyName)
			if err := u.pusher.PushText(ctx, *candidate.LineUserID, text); err != nil {
				logger.Log.Error("interest push failed",
					"candidate_profile_id", candidate.ID,
					"error", err)
			}
		}
	}()
}

func (u *interactionUsecase) ListMyInterests(ctx context.Context, candidateProfileID int64) ([]domain.CandidateInterest, error) {
	list, err := u.interactionRepo.ListByCandidate(ctx, candidateProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func (u *interactionUsecase) ListInterestedCandidates(ctx context.Context, companyProfileID int64) ([]domain.CompanyInterest, error) {
	list, err := u.interactionRepo.ListByCompany(ctx, companyProfileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
