package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/escalation-service/internal/domain"
)

func TestCanPerform(t *testing.T) {
	allRoles := []domain.Role{
		domain.RoleReviewer,
		domain.RoleHeadOfUnit,
		domain.RoleSupervisor,
		domain.RoleAttendee,
		domain.RoleDirector,
		domain.RoleManager,
		domain.RoleDirectorGeneral,
	}

	permitted := map[domain.WorkflowAction][]domain.Role{
		domain.ActionAttend:    {domain.RoleHeadOfUnit, domain.RoleSupervisor, domain.RoleAttendee},
		domain.ActionRecommend: {domain.RoleHeadOfUnit, domain.RoleSupervisor, domain.RoleAttendee},
		domain.ActionReverse:   {domain.RoleHeadOfUnit, domain.RoleSupervisor, domain.RoleDirectorGeneral},
		domain.ActionClose:     {domain.RoleHeadOfUnit, domain.RoleDirectorGeneral},
	}

	for action, allowed := range permitted {
		allowedSet := map[domain.Role]bool{}
		for _, r := range allowed {
			allowedSet[r] = true
		}
		for _, role := range allRoles {
			t.Run(string(action)+"/"+string(role), func(t *testing.T) {
				assert.Equal(t, allowedSet[role], CanPerform(role, action))
			})
		}
	}
}

func TestAuthorize_DeniedRole(t *testing.T) {
	err := Authorize(domain.RoleReviewer, domain.ActionClose)
	require.ErrorIs(t, err, ErrUnauthorizedAction)

	err = Authorize(domain.RoleDirector, domain.ActionAttend)
	require.ErrorIs(t, err, ErrUnauthorizedAction)
}

func TestAuthorize_UnknownAction(t *testing.T) {
	err := Authorize(domain.RoleHeadOfUnit, "ESCALATE")
	require.ErrorIs(t, err, ErrUnauthorizedAction)
}
