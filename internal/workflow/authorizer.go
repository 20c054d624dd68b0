package workflow

import (
	"fmt"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// actionRoles declares, once, which roles may perform each workflow action.
var actionRoles = map[domain.WorkflowAction]map[domain.Role]struct{}{
	domain.ActionAttend: {
		domain.RoleHeadOfUnit: {},
		domain.RoleSupervisor: {},
		domain.RoleAttendee:   {},
	},
	domain.ActionRecommend: {
		domain.RoleHeadOfUnit: {},
		domain.RoleSupervisor: {},
		domain.RoleAttendee:   {},
	},
	domain.ActionReverse: {
		domain.RoleHeadOfUnit:      {},
		domain.RoleSupervisor:      {},
		domain.RoleDirectorGeneral: {},
	},
	domain.ActionClose: {
		domain.RoleHeadOfUnit:      {},
		domain.RoleDirectorGeneral: {},
	},
}

// CanPerform reports whether the acting role may perform the action.
func CanPerform(role domain.Role, action domain.WorkflowAction) bool {
	permitted, ok := actionRoles[action]
	if !ok {
		return false
	}
	_, ok = permitted[role]
	return ok
}

// Authorize validates the acting role against the action's permitted set.
func Authorize(role domain.Role, action domain.WorkflowAction) error {
	if !CanPerform(role, action) {
		return fmt.Errorf("%w: role %s may not %s", ErrUnauthorizedAction, role, action)
	}
	return nil
}
