package domain

// Role enumerates the escalation roles an agent can hold.
type Role string

const (
	RoleReviewer        Role = "REVIEWER"
	RoleHeadOfUnit      Role = "HEAD_OF_UNIT"
	RoleSupervisor      Role = "SUPERVISOR"
	RoleAttendee        Role = "ATTENDEE"
	RoleManager         Role = "MANAGER"
	RoleDirector        Role = "DIRECTOR"
	RoleDirectorGeneral Role = "DIRECTOR_GENERAL"
)

var validRoles = map[Role]struct{}{
	RoleReviewer:        {},
	RoleHeadOfUnit:      {},
	RoleSupervisor:      {},
	RoleAttendee:        {},
	RoleManager:         {},
	RoleDirector:        {},
	RoleDirectorGeneral: {},
}

// IsValid reports whether the role is a known escalation role.
func (r Role) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}
