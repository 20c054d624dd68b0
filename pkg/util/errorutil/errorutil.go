package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/escalation-service/internal/workflow"
)

// DomainError standardizes application errors with a machine-readable kind.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// workflowErrorKinds maps workflow sentinel errors to codes and statuses so
// the UI can show exactly why an action was blocked.
var workflowErrorKinds = []struct {
	sentinel error
	code     string
	status   int
}{
	{workflow.ErrUnknownPath, "UNKNOWN_PATH", http.StatusInternalServerError},
	{workflow.ErrUnauthorizedAction, "UNAUTHORIZED_ACTION", http.StatusForbidden},
	{workflow.ErrMissingEvidence, "MISSING_EVIDENCE", http.StatusUnprocessableEntity},
	{workflow.ErrMissingReason, "MISSING_REASON", http.StatusUnprocessableEntity},
	{workflow.ErrInvalidTransition, "INVALID_TRANSITION", http.StatusConflict},
	{workflow.ErrConcurrentModification, "CONCURRENT_MODIFICATION", http.StatusConflict},
	{workflow.ErrTicketAlreadyClosed, "TICKET_ALREADY_CLOSED", http.StatusConflict},
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	for _, kind := range workflowErrorKinds {
		if errors.Is(err, kind.sentinel) {
			return &DomainError{
				Code:       kind.code,
				Message:    err.Error(),
				HTTPStatus: kind.status,
				Err:        err,
			}
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
