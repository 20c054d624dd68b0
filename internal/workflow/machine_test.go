package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/escalation-service/internal/domain"
)

func snapAt(path domain.WorkflowPath, step int, status domain.TicketStatus) Snapshot {
	complaintType := domain.ComplaintMinor
	if path == domain.PathMajorUnit || path == domain.PathMajorDirectorate {
		complaintType = domain.ComplaintMajor
	}
	return Snapshot{
		Path:          path,
		Step:          step,
		Status:        status,
		ComplaintType: complaintType,
	}
}

func strptr(s string) *string { return &s }

// Walks a minor/unit ticket from intake to closure, checking the state after
// every hop.
func TestMinorUnitLifecycle(t *testing.T) {
	snap := snapAt(domain.PathMinorUnit, 1, domain.TicketStatusOpen)

	tr, err := Recommend(snap, domain.RoleHeadOfUnit, "triaged", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.ToStep)
	assert.Equal(t, domain.TicketStatusPendingReview, tr.ToStatus)
	assert.Equal(t, domain.RoleHeadOfUnit, tr.AssignedRole)

	snap = snapAt(domain.PathMinorUnit, 2, tr.ToStatus)
	tr, err = Recommend(snap, domain.RoleHeadOfUnit, "assigning attendee", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.ToStep)
	assert.Equal(t, domain.RoleAttendee, tr.AssignedRole)

	snap = snapAt(domain.PathMinorUnit, 3, tr.ToStatus)
	tr, err = Attend(snap, domain.RoleAttendee, "working the case")
	require.NoError(t, err)
	assert.Equal(t, 3, tr.ToStep, "attend must not advance the step")
	assert.Equal(t, domain.TicketStatusInProgress, tr.ToStatus)

	snap = snapAt(domain.PathMinorUnit, 3, tr.ToStatus)
	tr, err = Recommend(snap, domain.RoleAttendee, "resolved, requesting approval", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.ToStep)
	// Final step of a minor/unit path is a HeadOfUnit approval.
	assert.Equal(t, domain.TicketStatusPendingApproval, tr.ToStatus)
	assert.Equal(t, domain.RoleHeadOfUnit, tr.AssignedRole)
	assert.False(t, tr.Completed)

	snap = snapAt(domain.PathMinorUnit, 4, tr.ToStatus)
	tr, err = Close(snap, domain.RoleHeadOfUnit, "approved and closed")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, tr.ToStatus)
	assert.True(t, tr.Completed)
}

func TestRecommend_IntoDirectorGeneralFinalStep(t *testing.T) {
	snap := snapAt(domain.PathMajorUnit, 4, domain.TicketStatusPendingReview)

	tr, err := Recommend(snap, domain.RoleHeadOfUnit, "forwarding for sign-off", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, tr.ToStep)
	assert.Equal(t, domain.RoleDirectorGeneral, tr.AssignedRole)
	assert.Equal(t, domain.TicketStatusInProgress, tr.ToStatus)
}

func TestRecommend_MajorAttendeeRequiresEvidence(t *testing.T) {
	snap := snapAt(domain.PathMajorUnit, 3, domain.TicketStatusInProgress)

	_, err := Recommend(snap, domain.RoleAttendee, "done", nil)
	require.ErrorIs(t, err, ErrMissingEvidence)

	_, err = Recommend(snap, domain.RoleAttendee, "done", strptr("   "))
	require.ErrorIs(t, err, ErrMissingEvidence)

	tr, err := Recommend(snap, domain.RoleAttendee, "done", strptr("https://files.example/evidence/1"))
	require.NoError(t, err)
	assert.Equal(t, 4, tr.ToStep)
	require.NotNil(t, tr.EvidenceURL)
}

func TestRecommend_MinorAttendeeNeedsNoEvidence(t *testing.T) {
	snap := snapAt(domain.PathMinorDirectorate, 4, domain.TicketStatusInProgress)

	tr, err := Recommend(snap, domain.RoleAttendee, "resolved", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, tr.ToStep)
}

func TestRecommend_AtTerminalStep(t *testing.T) {
	snap := snapAt(domain.PathMinorUnit, 4, domain.TicketStatusPendingApproval)

	_, err := Recommend(snap, domain.RoleHeadOfUnit, "push it further", nil)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestClose_OnlyAtTerminalStep(t *testing.T) {
	// Mid-path close must be rejected regardless of the acting role's rights.
	snap := snapAt(domain.PathMajorDirectorate, 3, domain.TicketStatusPendingReview)

	_, err := Close(snap, domain.RoleHeadOfUnit, "closing early")
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = Close(snap, domain.RoleDirectorGeneral, "closing early")
	require.ErrorIs(t, err, ErrInvalidTransition)

	snap = snapAt(domain.PathMajorDirectorate, 7, domain.TicketStatusInProgress)
	tr, err := Close(snap, domain.RoleDirectorGeneral, "signed off")
	require.NoError(t, err)
	assert.True(t, tr.Completed)
}

func TestReviewerCanNeverClose(t *testing.T) {
	for step := 1; step <= 4; step++ {
		snap := snapAt(domain.PathMinorUnit, step, domain.TicketStatusInProgress)
		_, err := Close(snap, domain.RoleReviewer, "attempted close")
		require.ErrorIs(t, err, ErrUnauthorizedAction, "step %d", step)
	}
}

func TestAttend_RepeatableAtSameStep(t *testing.T) {
	snap := snapAt(domain.PathMinorUnit, 3, domain.TicketStatusInProgress)

	tr, err := Attend(snap, domain.RoleAttendee, "picking it back up")
	require.NoError(t, err)
	assert.Equal(t, snap.Step, tr.ToStep)
	assert.Equal(t, domain.TicketStatusInProgress, tr.ToStatus)
}

func TestReverse(t *testing.T) {
	snap := snapAt(domain.PathMinorDirectorate, 3, domain.TicketStatusPendingReview)

	tr, err := Reverse(snap, domain.RoleSupervisor, "insufficient detail in the recommendation")
	require.NoError(t, err)
	assert.Equal(t, 2, tr.ToStep)
	assert.Equal(t, domain.TicketStatusReversed, tr.ToStatus)
	assert.Equal(t, domain.RoleDirector, tr.AssignedRole)
}

func TestReverse_RequiresReason(t *testing.T) {
	snap := snapAt(domain.PathMinorDirectorate, 3, domain.TicketStatusPendingReview)

	_, err := Reverse(snap, domain.RoleSupervisor, "")
	require.ErrorIs(t, err, ErrMissingReason)

	_, err = Reverse(snap, domain.RoleSupervisor, "  \t ")
	require.ErrorIs(t, err, ErrMissingReason)
}

func TestReverse_AtFirstStep(t *testing.T) {
	snap := snapAt(domain.PathMajorUnit, 1, domain.TicketStatusOpen)

	_, err := Reverse(snap, domain.RoleHeadOfUnit, "bad intake")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestClosedTicketRejectsEveryAction(t *testing.T) {
	snap := snapAt(domain.PathMinorUnit, 4, domain.TicketStatusClosed)
	snap.Completed = true

	_, err := Attend(snap, domain.RoleHeadOfUnit, "n")
	require.ErrorIs(t, err, ErrTicketAlreadyClosed)

	_, err = Recommend(snap, domain.RoleHeadOfUnit, "n", nil)
	require.ErrorIs(t, err, ErrTicketAlreadyClosed)

	_, err = Reverse(snap, domain.RoleHeadOfUnit, "reopen please")
	require.ErrorIs(t, err, ErrTicketAlreadyClosed)

	_, err = Close(snap, domain.RoleHeadOfUnit, "again")
	require.ErrorIs(t, err, ErrTicketAlreadyClosed)
}

func TestAuthorizationCheckedBeforeStateValidation(t *testing.T) {
	// A denied role gets UNAUTHORIZED even when the state would also be
	// invalid for the action.
	snap := snapAt(domain.PathMinorUnit, 4, domain.TicketStatusClosed)
	snap.Completed = true

	_, err := Close(snap, domain.RoleReviewer, "n")
	require.ErrorIs(t, err, ErrUnauthorizedAction)
}

func TestTransitionsOnUnknownPath(t *testing.T) {
	snap := Snapshot{Path: "MAJOR_REGION", Step: 1, Status: domain.TicketStatusOpen, ComplaintType: domain.ComplaintMajor}

	_, err := Recommend(snap, domain.RoleHeadOfUnit, "n", nil)
	require.ErrorIs(t, err, ErrUnknownPath)

	_, err = Close(snap, domain.RoleHeadOfUnit, "n")
	require.ErrorIs(t, err, ErrUnknownPath)
}
