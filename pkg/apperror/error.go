package apperror

import "net/http"

// Stable machine-readable error kinds. Clients branch on Kind, not Message.
const (
	KindUnauthenticated      = "UNAUTHENTICATED"
	KindForbidden            = "FORBIDDEN"
	KindValidation           = "VALIDATION_ERROR"
	KindNotFound             = "NOT_FOUND"
	KindConflict             = "CONFLICT"
	KindDuplicateApplication = "DUPLICATE_APPLICATION"
	KindDuplicateInteraction = "DUPLICATE_INTERACTION"
	KindBadUpstream          = "BAD_UPSTREAM"
	KindInternal             = "INTERNAL"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthenticated, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, KindForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// Conflict reports a uniqueness violation. kind distinguishes which
// constraint tripped (duplicate email, duplicate application, duplicate
// interaction) so clients can react without string matching.
func Conflict(kind, message string) *AppError {
	return New(http.StatusConflict, kind, message, nil)
}

// BadUpstream reports an unusable response from an external collaborator
// (identity provider, notifier).
func BadUpstream(message string, err error) *AppError {
	return New(http.StatusBadGateway, KindBadUpstream, message, err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}
