package dto

import (
	"time"

	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/workflow"
)

// CreateTicketRequest payload for complaint intake.
type CreateTicketRequest struct {
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	CallerName    string                `json:"caller_name"`
	CallerPhone   string                `json:"caller_phone"`
	ComplaintType domain.ComplaintType  `json:"complaint_type"`
	Scope         domain.ComplaintScope `json:"scope"`
}

// TicketResponse carries ticket fields plus the workflow projection.
type TicketResponse struct {
	ID            string                  `json:"id"`
	ExternalKey   string                  `json:"external_key"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	CallerName    string                  `json:"caller_name"`
	CallerPhone   string                  `json:"caller_phone"`
	ComplaintType domain.ComplaintType    `json:"complaint_type"`
	Scope         domain.ComplaintScope   `json:"scope"`
	Status        domain.TicketStatus     `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	ClosedAt      *time.Time              `json:"closed_at,omitempty"`
	Workflow      *workflow.ProjectedView `json:"workflow"`
}
