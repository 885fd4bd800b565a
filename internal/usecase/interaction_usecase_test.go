package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/internal/usecase"
	"go-internmatch-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// blockingNotifier records calls and signals completion so tests can wait for
// the detached notification goroutine.
type blockingNotifier struct {
	mu     sync.Mutex
	done   chan struct{}
	notice *domain.InterestNotification
	err    error
}

func newBlockingNotifier(err error) *blockingNotifier {
	return &blockingNotifier{done: make(chan struct{}, 1), err: err}
}

func (n *blockingNotifier) SendInterestNotice(ctx context.Context, notice domain.InterestNotification) error {
	n.mu.Lock()
	n.notice = &notice
	n.mu.Unlock()
	n.done <- struct{}{}
	return n.err
}

func (n *blockingNotifier) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	return nil
}

func (n *blockingNotifier) wait(t *testing.T) *domain.InterestNotification {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification goroutine never ran")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notice
}

func companyFixture() *domain.CompanyProfile {
	return &domain.CompanyProfile{
		ID:            2,
		CompanyName:   "Acme",
		RecruiterName: strPtr("Khun HR"),
		Emails:        []domain.CompanyEmail{{Email: "hr@acme.example"}},
		Phones:        []domain.CompanyPhone{{Phone: "+66 2 000 0000"}},
	}
}

func candidateFixture() *domain.CandidateProfile {
	return &domain.CandidateProfile{
		ID:           1,
		FullName:     "Somchai",
		ContactEmail: strPtr("somchai@example.com"),
	}
}

func TestExpressInterest(t *testing.T) {
	t.Run("Should fail with NotFound for a missing candidate", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, int64(2)).Return(companyFixture(), nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

		uc := usecase.NewInteractionUsecase(new(MockInteractionRepo), companyRepo, candidateRepo, newBlockingNotifier(nil), nil)
		_, err := uc.ExpressInterest(context.Background(), 2, 404)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, appErrKind(t, err))
	})

	t.Run("Should surface a repeated pair as the typed duplicate", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, int64(2)).Return(companyFixture(), nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(candidateFixture(), nil)
		interactionRepo := new(MockInteractionRepo)
		interactionRepo.On("Create", mock.Anything, int64(2), int64(1)).
			Return(nil, apperror.Conflict(apperror.KindDuplicateInteraction, "You have already expressed interest in this candidate"))

		uc := usecase.NewInteractionUsecase(interactionRepo, companyRepo, candidateRepo, newBlockingNotifier(nil), nil)
		_, err := uc.ExpressInterest(context.Background(), 2, 1)
		assert.Error(t, err)
		assert.Equal(t, apperror.KindDuplicateInteraction, appErrKind(t, err))
	})

	t.Run("Should disclose company contacts in the notice", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, int64(2)).Return(companyFixture(), nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(candidateFixture(), nil)
		interactionRepo := new(MockInteractionRepo)
		interactionRepo.On("Create", mock.Anything, int64(2), int64(1)).
			Return(&domain.Interaction{ID: 10, CompanyProfileID: 2, StudentProfileID: 1}, nil)

		notifier := newBlockingNotifier(nil)
		uc := usecase.NewInteractionUsecase(interactionRepo, companyRepo, candidateRepo, notifier, nil)

		interaction, err := uc.ExpressInterest(context.Background(), 2, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), interaction.ID)

		notice := notifier.wait(t)
		assert.Equal(t, "somchai@example.com", notice.CandidateEmail)
		assert.Equal(t, "Acme", notice.CompanyName)
		assert.Equal(t, []string{"hr@acme.example"}, notice.Emails)
		assert.Equal(t, []string{"+66 2 000 0000"}, notice.Phones)
	})

	t.Run("Should succeed even when the notifier fails", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, int64(2)).Return(companyFixture(), nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(candidateFixture(), nil)
		interactionRepo := new(MockInteractionRepo)
		interactionRepo.On("Create", mock.Anything, int64(2), int64(1)).
			Return(&domain.Interaction{ID: 11}, nil)

		notifier := newBlockingNotifier(errors.New("smtp down"))
		uc := usecase.NewInteractionUsecase(interactionRepo, companyRepo, candidateRepo, notifier, nil)

		interaction, err := uc.ExpressInterest(context.Background(), 2, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), interaction.ID)
		notifier.wait(t)
	})

	t.Run("Should push a LINE notice for linked candidates", func(t *testing.T) {
		candidate := candidateFixture()
		candidate.LineUserID = strPtr("U1234")

		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, int64(2)).Return(companyFixture(), nil)
		candidateRepo := new(MockCandidateRepo)
		candidateRepo.On("GetByID", mock.Anything, int64(1)).Return(candidate, nil)
		interactionRepo := new(MockInteractionRepo)
		interactionRepo.On("Create", mock.Anything, int64(2), int64(1)).
			Return(&domain.Interaction{ID: 12}, nil)

		pushed := make(chan string, 1)
		pusher := new(MockPusher)
		pusher.On("PushText", mock.Anything, "U1234", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { pushed <- args.String(2) }).Return(nil)

		notifier := newBlockingNotifier(nil)
		uc := usecase.NewInteractionUsecase(interactionRepo, companyRepo, candidateRepo, notifier, pusher)

		_, err := uc.ExpressInterest(context.Background(), 2, 1)
		assert.NoError(t, err)
		notifier.wait(t)

		select {
		case text := <-pushed:
			assert.Contains(t, text, "Acme")
		case <-time.After(2 * time.Second):
			t.Fatal("push never happened")
		}
	})
}

func TestListInterests(t *testing.T) {
	t.Run("Should return candidate-side interests", func(t *testing.T) {
		interactionRepo := new(MockInteractionRepo)
		interactionRepo.On("ListByCandidate", mock.Anything, int64(1)).Return([]domain.CandidateInterest{
			{
				Interaction: domain.Interaction{ID: 1},
				Company:     domain.CompanySummary{ProfileID: 2, CompanyName: "Acme"},
			},
		}, nil)

		uc := usecase.NewInteractionUsecase(interactionRepo, new(MockCompanyRepo), new(MockCandidateRepo), newBlockingNotifier(nil), nil)
		list, err := uc.ListMyInterests(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "Acme", list[0].Company.CompanyName)
	})

	t.Run("Should return company-side interests", func(t *testing.T) {
		interactionRepo := new(MockInteractionRepo)
		interactionRepo.On("ListByCompany", mock.Anything, int64(2)).Return([]domain.CompanyInterest{}, nil)

		uc := usecase.NewInteractionUsecase(interactionRepo, new(MockCompanyRepo), new(MockCandidateRepo), newBlockingNotifier(nil), nil)
		list, err := uc.ListInterestedCandidates(context.Background(), 2)
		assert.NoError(t, err)
		assert.Empty(t, list)
	})
}
