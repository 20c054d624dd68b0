package dto

import (
	"time"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// AttendRequest payload.
type AttendRequest struct {
	Notes string `json:"notes"`
}

// RecommendRequest payload.
type RecommendRequest struct {
	RecommendationNotes string  `json:"recommendation_notes"`
	EvidenceURL         *string `json:"evidence_url,omitempty"`
}

// ReverseRequest payload.
type ReverseRequest struct {
	ReversalReason string `json:"reversal_reason"`
}

// CloseRequest payload.
type CloseRequest struct {
	ClosureNotes string `json:"closure_notes"`
}

// AuditRecordResponse represents one audit trail entry.
type AuditRecordResponse struct {
	ID          string                `json:"id"`
	TicketID    string                `json:"ticket_id"`
	FromStep    int                   `json:"from_step"`
	ToStep      int                   `json:"to_step"`
	Action      domain.WorkflowAction `json:"action"`
	ActingRole  domain.Role           `json:"acting_role"`
	Notes       string                `json:"notes"`
	EvidenceURL *string               `json:"evidence_url,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}
