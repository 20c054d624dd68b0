package events

import (
	"time"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventWorkflowAttended    EventType = "workflow_attended"
	EventWorkflowRecommended EventType = "workflow_recommended"
	EventWorkflowReversed    EventType = "workflow_reversed"
	EventWorkflowClosed      EventType = "workflow_closed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Role    domain.Role `json:"role"`
	AgentID *string     `json:"agent_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Path          domain.WorkflowPath  `json:"path"`
	ComplaintType domain.ComplaintType `json:"complaint_type"`
	Scope         domain.ComplaintScope `json:"scope"`
	Title         string               `json:"title"`
}

// WorkflowTransitionPayload payload for attend/recommend/reverse/close.
type WorkflowTransitionPayload struct {
	Action     domain.WorkflowAction `json:"action"`
	FromStep   int                   `json:"from_step"`
	ToStep     int                   `json:"to_step"`
	FromStatus domain.TicketStatus   `json:"from_status"`
	ToStatus   domain.TicketStatus   `json:"to_status"`
	ActingRole domain.Role           `json:"acting_role"`
	Completed  bool                  `json:"completed"`
}

// TypeForAction maps a workflow action to its event type.
func TypeForAction(action domain.WorkflowAction) EventType {
	switch action {
	case domain.ActionAttend:
		return EventWorkflowAttended
	case domain.ActionRecommend:
		return EventWorkflowRecommended
	case domain.ActionReverse:
		return EventWorkflowReversed
	case domain.ActionClose:
		return EventWorkflowClosed
	default:
		return EventType("workflow_" + string(action))
	}
}
