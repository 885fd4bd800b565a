package usecase_test

import (
	"context"
	"time"

	"go-internmatch-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateWithProfile(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProviderLink(ctx context.Context, userID int64, provider, socialID string) error {
	return m.Called(ctx, userID, provider, socialID).Error(0)
}
func (m *MockUserRepo) UpdatePasswordHash(ctx context.Context, userID int64, hash string) error {
	return m.Called(ctx, userID, hash).Error(0)
}
func (m *MockUserRepo) SetResetToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return m.Called(ctx, userID, tokenHash, expiresAt).Error(0)
}
func (m *MockUserRepo) GetByResetTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ResetPassword(ctx context.Context, userID int64, newHash string) error {
	return m.Called(ctx, userID, newHash).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, profileID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) GetDetails(ctx context.Context, profileID int64) (*domain.CandidateDetails, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateDetails), args.Error(1)
}
func (m *MockCandidateRepo) UpdateFields(ctx context.Context, profileID int64, fields map[string]any) error {
	return m.Called(ctx, profileID, fields).Error(0)
}
func (m *MockCandidateRepo) CreateWorkHistory(ctx context.Context, wh *domain.WorkHistory) error {
	return m.Called(ctx, wh).Error(0)
}
func (m *MockCandidateRepo) UpdateWorkHistory(ctx context.Context, wh *domain.WorkHistory) error {
	return m.Called(ctx, wh).Error(0)
}
func (m *MockCandidateRepo) GetWorkHistory(ctx context.Context, id int64) (*domain.WorkHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkHistory), args.Error(1)
}
func (m *MockCandidateRepo) DeleteWorkHistory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCandidateRepo) CreateCertificateFile(ctx context.Context, f *domain.CertificateFile) error {
	return m.Called(ctx, f).Error(0)
}
func (m *MockCandidateRepo) GetCertificateFile(ctx context.Context, id int64) (*domain.CertificateFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateFile), args.Error(1)
}
func (m *MockCandidateRepo) DeleteCertificateFile(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCandidateRepo) CreateContactFile(ctx context.Context, f *domain.ContactFile) error {
	return m.Called(ctx, f).Error(0)
}
func (m *MockCandidateRepo) GetContactFile(ctx context.Context, id int64) (*domain.ContactFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactFile), args.Error(1)
}
func (m *MockCandidateRepo) DeleteContactFile(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCandidateRepo) Search(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]domain.CandidateSummary, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CandidateSummary), args.Get(1).(int64), args.Error(2)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, profileID int64) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) GetFirst(ctx context.Context) (*domain.CompanyProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCompanyRepo) UpdateLogo(ctx context.Context, profileID int64, url string) error {
	return m.Called(ctx, profileID, url).Error(0)
}
func (m *MockCompanyRepo) ReplaceEmails(ctx context.Context, profileID int64, emails []string) ([]domain.CompanyEmail, error) {
	args := m.Called(ctx, profileID, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyEmail), args.Error(1)
}
func (m *MockCompanyRepo) ReplacePhones(ctx context.Context, profileID int64, phones []string) ([]domain.CompanyPhone, error) {
	args := m.Called(ctx, profileID, phones)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyPhone), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ReplaceForCandidate(ctx context.Context, profileID int64, skills []domain.RatedSkillInput) ([]domain.RatedSkill, error) {
	args := m.Called(ctx, profileID, skills)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatedSkill), args.Error(1)
}
func (m *MockSkillRepo) ListForCandidate(ctx context.Context, profileID int64) ([]domain.RatedSkill, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatedSkill), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Submit(ctx context.Context, app *domain.InternshipApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByCandidate(ctx context.Context, candidateProfileID int64) (*domain.InternshipApplication, error) {
	args := m.Called(ctx, candidateProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InternshipApplication), args.Error(1)
}

type MockInteractionRepo struct {
	mock.Mock
}

func (m *MockInteractionRepo) Create(ctx context.Context, companyProfileID, studentProfileID int64) (*domain.Interaction, error) {
	args := m.Called(ctx, companyProfileID, studentProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interaction), args.Error(1)
}
func (m *MockInteractionRepo) ListByCandidate(ctx context.Context, candidateProfileID int64) ([]domain.CandidateInterest, error) {
	args := m.Called(ctx, candidateProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CandidateInterest), args.Error(1)
}
func (m *MockInteractionRepo) ListByCompany(ctx context.Context, companyProfileID int64) ([]domain.CompanyInterest, error) {
	args := m.Called(ctx, companyProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyInterest), args.Error(1)
}

// Mock Collaborators

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendInterestNotice(ctx context.Context, n domain.InterestNotification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotifier) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	return m.Called(ctx, to, name, resetURL).Error(0)
}

type MockPusher struct {
	mock.Mock
}

func (m *MockPusher) PushText(ctx context.Context, recipientID, text string) error {
	return m.Called(ctx, recipientID, text).Error(0)
}

type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) Suggest(ctx context.Context, text string) ([]domain.SkillSuggestion, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillSuggestion), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Exchange(ctx context.Context, code string) (*domain.FederatedIdentity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FederatedIdentity), args.Error(1)
}
