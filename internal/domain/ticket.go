package domain

import "time"

// ComplaintType classifies complaint severity, set once at categorization.
type ComplaintType string

const (
	ComplaintMinor ComplaintType = "MINOR"
	ComplaintMajor ComplaintType = "MAJOR"
)

// ComplaintScope identifies the organizational scope of a complaint.
type ComplaintScope string

const (
	ScopeUnit        ComplaintScope = "UNIT"
	ScopeDirectorate ComplaintScope = "DIRECTORATE"
)

// TicketStatus enumerates workflow lifecycle states for complaint tickets.
type TicketStatus string

const (
	TicketStatusOpen            TicketStatus = "OPEN"
	TicketStatusInProgress      TicketStatus = "IN_PROGRESS"
	TicketStatusPendingReview   TicketStatus = "PENDING_REVIEW"
	TicketStatusPendingApproval TicketStatus = "PENDING_APPROVAL"
	TicketStatusClosed          TicketStatus = "CLOSED"
	TicketStatusReversed        TicketStatus = "REVERSED"
)

// Ticket is the aggregate for complaint tickets. The workflow sub-state
// (WorkflowPath, CurrentStep, Status, WorkflowCompleted, AssignedRole) is
// assigned at categorization and mutated only through workflow transitions.
type Ticket struct {
	ID                string
	ExternalKey       string
	Title             string
	Description       string
	CallerName        string
	CallerPhone       string
	ComplaintType     ComplaintType
	Scope             ComplaintScope
	WorkflowPath      WorkflowPath
	CurrentStep       int
	Status            TicketStatus
	WorkflowCompleted bool
	AssignedRole      Role
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ClosedAt          *time.Time
}
