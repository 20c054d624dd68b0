package workflow

import (
	"fmt"
	"strings"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// Snapshot is the workflow sub-state of a ticket as read before a transition.
// Transitions are computed against a snapshot and persisted with
// compare-and-swap semantics on (Step, Status).
type Snapshot struct {
	Path          domain.WorkflowPath
	Step          int
	Status        domain.TicketStatus
	Completed     bool
	ComplaintType domain.ComplaintType
}

// SnapshotOf captures the workflow sub-state of a ticket.
func SnapshotOf(t *domain.Ticket) Snapshot {
	return Snapshot{
		Path:          t.WorkflowPath,
		Step:          t.CurrentStep,
		Status:        t.Status,
		Completed:     t.WorkflowCompleted,
		ComplaintType: t.ComplaintType,
	}
}

// Transition describes the effect of one workflow action. It is produced by
// the pure transition functions below and applied atomically by the caller.
type Transition struct {
	Action       domain.WorkflowAction
	ActingRole   domain.Role
	FromStep     int
	ToStep       int
	FromStatus   domain.TicketStatus
	ToStatus     domain.TicketStatus
	AssignedRole domain.Role
	Completed    bool
	Notes        string
	EvidenceURL  *string
}

// Attend marks the ticket as actively worked at its current step. The step
// does not change; re-applying at the same step succeeds and re-records.
func Attend(snap Snapshot, role domain.Role, notes string) (*Transition, error) {
	if err := Authorize(role, domain.ActionAttend); err != nil {
		return nil, err
	}
	if err := checkActionable(snap); err != nil {
		return nil, err
	}
	assigned, err := RoleAt(snap.Path, snap.Step)
	if err != nil {
		return nil, err
	}
	return &Transition{
		Action:       domain.ActionAttend,
		ActingRole:   role,
		FromStep:     snap.Step,
		ToStep:       snap.Step,
		FromStatus:   snap.Status,
		ToStatus:     domain.TicketStatusInProgress,
		AssignedRole: assigned,
		Notes:        notes,
	}, nil
}

// Recommend advances the ticket one step. Major complaints leaving the
// Attendee step must carry an evidence URL. Recommend is never valid at the
// terminal step; close must be used there instead.
func Recommend(snap Snapshot, role domain.Role, notes string, evidenceURL *string) (*Transition, error) {
	if err := Authorize(role, domain.ActionRecommend); err != nil {
		return nil, err
	}
	if err := checkActionable(snap); err != nil {
		return nil, err
	}
	total, err := TotalSteps(snap.Path)
	if err != nil {
		return nil, err
	}
	if snap.Step >= total {
		return nil, fmt.Errorf("%w: cannot recommend at terminal step %d of %s", ErrInvalidTransition, snap.Step, snap.Path)
	}
	current, err := RoleAt(snap.Path, snap.Step)
	if err != nil {
		return nil, err
	}
	if snap.ComplaintType == domain.ComplaintMajor && current == domain.RoleAttendee {
		if evidenceURL == nil || strings.TrimSpace(*evidenceURL) == "" {
			return nil, fmt.Errorf("%w: major complaint at step %d", ErrMissingEvidence, snap.Step)
		}
	}

	toStep := snap.Step + 1
	assigned, err := RoleAt(snap.Path, toStep)
	if err != nil {
		return nil, err
	}
	status := domain.TicketStatusPendingReview
	if toStep == total {
		// The final step is actionable only for close. Paths ending in a
		// Director-General sign-off stay IN_PROGRESS there; all others await
		// approval by the final role.
		if assigned == domain.RoleDirectorGeneral {
			status = domain.TicketStatusInProgress
		} else {
			status = domain.TicketStatusPendingApproval
		}
	}
	return &Transition{
		Action:       domain.ActionRecommend,
		ActingRole:   role,
		FromStep:     snap.Step,
		ToStep:       toStep,
		FromStatus:   snap.Status,
		ToStatus:     status,
		AssignedRole: assigned,
		Notes:        notes,
		EvidenceURL:  evidenceURL,
	}, nil
}

// Reverse sends the ticket back one step with a mandatory reason.
func Reverse(snap Snapshot, role domain.Role, reason string) (*Transition, error) {
	if err := Authorize(role, domain.ActionReverse); err != nil {
		return nil, err
	}
	if err := checkActionable(snap); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrMissingReason
	}
	if snap.Step <= 1 {
		return nil, fmt.Errorf("%w: cannot reverse past step 1", ErrInvalidTransition)
	}
	toStep := snap.Step - 1
	assigned, err := RoleAt(snap.Path, toStep)
	if err != nil {
		return nil, err
	}
	return &Transition{
		Action:       domain.ActionReverse,
		ActingRole:   role,
		FromStep:     snap.Step,
		ToStep:       toStep,
		FromStatus:   snap.Status,
		ToStatus:     domain.TicketStatusReversed,
		AssignedRole: assigned,
		Notes:        reason,
	}, nil
}

// Close finalizes the ticket at its terminal step. Irreversible; any later
// action fails with ErrTicketAlreadyClosed.
func Close(snap Snapshot, role domain.Role, closureNotes string) (*Transition, error) {
	if err := Authorize(role, domain.ActionClose); err != nil {
		return nil, err
	}
	if err := checkActionable(snap); err != nil {
		return nil, err
	}
	total, err := TotalSteps(snap.Path)
	if err != nil {
		return nil, err
	}
	if snap.Step != total {
		return nil, fmt.Errorf("%w: close only valid at step %d of %s, ticket is at step %d", ErrInvalidTransition, total, snap.Path, snap.Step)
	}
	assigned, err := RoleAt(snap.Path, snap.Step)
	if err != nil {
		return nil, err
	}
	return &Transition{
		Action:       domain.ActionClose,
		ActingRole:   role,
		FromStep:     snap.Step,
		ToStep:       snap.Step,
		FromStatus:   snap.Status,
		ToStatus:     domain.TicketStatusClosed,
		AssignedRole: assigned,
		Completed:    true,
		Notes:        closureNotes,
	}, nil
}

func checkActionable(snap Snapshot) error {
	if snap.Status == domain.TicketStatusClosed || snap.Completed {
		return ErrTicketAlreadyClosed
	}
	return nil
}
