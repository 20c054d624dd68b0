package domain

import "time"

// AuditRecord is an immutable audit trail entry for one applied workflow
// transition. Records are append-only; exactly one is written per successful
// transition and none for rejected attempts.
type AuditRecord struct {
	ID          string
	TicketID    string
	FromStep    int
	ToStep      int
	Action      WorkflowAction
	ActingRole  Role
	Notes       string
	EvidenceURL *string
	CreatedAt   time.Time
}
