package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/escalation-service/internal/workflow"
)

func TestToDomainError_WorkflowSentinels(t *testing.T) {
	tests := []struct {
		err        error
		wantCode   string
		wantStatus int
	}{
		{workflow.ErrUnknownPath, "UNKNOWN_PATH", http.StatusInternalServerError},
		{workflow.ErrUnauthorizedAction, "UNAUTHORIZED_ACTION", http.StatusForbidden},
		{workflow.ErrMissingEvidence, "MISSING_EVIDENCE", http.StatusUnprocessableEntity},
		{workflow.ErrMissingReason, "MISSING_REASON", http.StatusUnprocessableEntity},
		{workflow.ErrInvalidTransition, "INVALID_TRANSITION", http.StatusConflict},
		{workflow.ErrConcurrentModification, "CONCURRENT_MODIFICATION", http.StatusConflict},
		{workflow.ErrTicketAlreadyClosed, "TICKET_ALREADY_CLOSED", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			de := ToDomainError(tt.err)
			require.NotNil(t, de)
			assert.Equal(t, tt.wantCode, de.Code)
			assert.Equal(t, tt.wantStatus, de.HTTPStatus)
		})
	}
}

func TestToDomainError_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("applying transition: %w", workflow.ErrConcurrentModification)
	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "CONCURRENT_MODIFICATION", de.Code)
	assert.Equal(t, http.StatusConflict, de.HTTPStatus)
}

func TestToDomainError_NoRows(t *testing.T) {
	de := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, de)
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
}

func TestToDomainError_PassThrough(t *testing.T) {
	original := NewDomainError("VALIDATION_FAILED", "bad input", http.StatusBadRequest, nil)
	de := ToDomainError(fmt.Errorf("handler: %w", original))
	assert.Same(t, original, de)
}

func TestToDomainError_Unknown(t *testing.T) {
	de := ToDomainError(errors.New("boom"))
	require.NotNil(t, de)
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)

	assert.Nil(t, ToDomainError(nil))
}
