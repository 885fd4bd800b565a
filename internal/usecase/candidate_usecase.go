package usecase

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"go-internmatch-backend/internal/domain"
	"go-internmatch-backend/pkg/apperror"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

func (u *candidateUsecase) GetMyProfile(ctx context.Context, profileID int64) (*domain.CandidateDetails, error) {
	details, err := u.candidateRepo.GetDetails(ctx, profileID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if details == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return details, nil
}

// patchableFields maps incoming JSON keys onto profile columns together with
// a coercion function. Optional fields coerce to nil on unparseable input
// rather than failing the whole request.
var patchableFields = map[string]func(any) (any, bool){
	"full_name":        coerceString,
	"contact_email":    coerceNullableString,
	"phone":            coerceNullableString,
	"bio":              coerceNullableString,
	"photo_url":        coerceNullableString,
	"video_intro_url":  coerceNullableString,
	"media_links":      coerceStringSlice,
	"desired_position": coerceNullableString,
	"birth_date":       coerceNullableDate,
	"gpa":              coerceNullableNumber,
	"line_user_id":     coerceNullableString,
}

// UpdateMyProfile applies a sparse patch: only keys present in the map are
// written, explicit nulls clear, unknown keys are rejected.
func (u *candidateUsecase) UpdateMyProfile(ctx context.Context, profileID int64, patch map[string]any) (*domain.CandidateDetails, error) {
	if len(patch) == 0 {
		return u.GetMyProfile(ctx, profileID)
	}

	fields := make(map[string]any, len(patch))
	for key, raw := range patch {
		coerce, ok := patchableFields[key]
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("Unknown profile field %q", key))
		}
		value, ok := coerce(raw)
		if !ok {
			return nil, apperror.BadRequest(fmt.Sprintf("Invalid value for field %q", key))
		}
		fields[key] = value
	}

	if err := u.candidateRepo.UpdateFields(ctx, profileID, fields); err != nil {
		return nil, err
	}
	return u.GetMyProfile(ctx, profileID)
}

func (u *candidateUsecase) SetAvatar(ctx context.Context, profileID int64, url string) error {
	if url == "" {
		return apperror.BadRequest("Avatar URL is required")
	}
	return u.candidateRepo.UpdateFields(ctx, profileID, map[string]any{"photo_url": url})
}

func (u *candidateUsecase) AddWorkHistory(ctx context.Context, profileID int64, wh *domain.WorkHistory) error {
	if wh.CompanyName == "" || wh.Position == "" {
		return apperror.BadRequest("Company name and position are required")
	}
	wh.CandidateProfileID = profileID
	return u.candidateRepo.CreateWorkHistory(ctx, wh)
}

func (u *candidateUsecase) UpdateWorkHistory(ctx context.Context, profileID int64, wh *domain.WorkHistory) error {
	existing, err := u.candidateRepo.GetWorkHistory(ctx, wh.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Work history entry not found")
	}
	if existing.CandidateProfileID != profileID {
		return apperror.Forbidden("You do not own this work history entry")
	}
	wh.CandidateProfileID = profileID
	return u.candidateRepo.UpdateWorkHistory(ctx, wh)
}

func (u *candidateUsecase) DeleteWorkHistory(ctx context.Context, profileID, workHistoryID int64) error {
	existing, err := u.candidateRepo.GetWorkHistory(ctx, workHistoryID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Work history entry not found")
	}
	if existing.CandidateProfileID != profileID {
		return apperror.Forbidden("You do not own this work history entry")
	}
	return u.candidateRepo.DeleteWorkHistory(ctx, workHistoryID)
}

func (u *candidateUsecase) AddCertificateFile(ctx context.Context, profileID int64, f *domain.CertificateFile) error {
	if f.Name == "" || f.URL == "" {
		return apperror.BadRequest("File name and URL are required")
	}
	f.CandidateProfileID = profileID
	return u.candidateRepo.CreateCertificateFile(ctx, f)
}

func (u *candidateUsecase) DeleteCertificateFile(ctx context.Context, profileID, fileID int64) error {
	existing, err := u.candidateRepo.GetCertificateFile(ctx, fileID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Certificate file not found")
	}
	if existing.CandidateProfileID != profileID {
		return apperror.Forbidden("You do not own this file")
	}
	return u.candidateRepo.DeleteCertificateFile(ctx, fileID)
}

func (u *candidateUsecase) AddContactFile(ctx context.Context, profileID int64, f *domain.ContactFile) error {
	if f.Name == "" || f.URL == "" {
		return apperror.BadRequest("File name and URL are required")
	}
	f.CandidateProfileID = profileID
	return u.candidateRepo.CreateContactFile(ctx, f)
}

func (u *candidateUsecase) DeleteContactFile(ctx context.Context, profileID, fileID int64) error {
	existing, err := u.candidateRepo.GetContactFile(ctx, fileID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil {
		return apperror.NotFound("Contact file not found")
	}
	if existing.CandidateProfileID != profileID {
		return apperror.Forbidden("You do not own this file")
	}
	return u.candidateRepo.DeleteContactFile(ctx, fileID)
}

func (u *candidateUsecase) Search(ctx context.Context, filter domain.SearchFilter, page, limit int) (*domain.CandidatePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := (page - 1) * limit
	data, total, err := u.candidateRepo.Search(ctx, filter, limit, offset)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return &domain.CandidatePage{
		Data: data,
		Pagination: domain.Pagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
		},
	}, nil
}

// Coercion helpers. The bool result distinguishes "coerced (possibly to
// nil)" from "shape is unacceptable" (e.g. an object where a scalar
// belongs).

func coerceString(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return s, true
}

func coerceNullableString(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return s, true
}

func coerceStringSlice(v any) (any, bool) {
	if v == nil {
		return []string{}, true
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// coerceNullableDate parses YYYY-MM-DD; empty or unparseable input becomes
// null instead of failing the request.
func coerceNullableDate(v any) (any, bool) {
	if v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, true
	}
	return t, true
}

// coerceNullableNumber accepts JSON numbers and numeric strings; anything
// unparseable becomes null.
func coerceNullableNumber(v any) (any, bool) {
	switch n := v.(type) {
	case nil:
		return nil, true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil, true
		}
		return f, true
	default:
		return nil, false
	}
}
