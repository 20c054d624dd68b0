package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/escalation-service/internal/domain"
)

func TestPathFor(t *testing.T) {
	tests := []struct {
		name          string
		complaintType domain.ComplaintType
		scope         domain.ComplaintScope
		want          domain.WorkflowPath
	}{
		{"minor unit", domain.ComplaintMinor, domain.ScopeUnit, domain.PathMinorUnit},
		{"minor directorate", domain.ComplaintMinor, domain.ScopeDirectorate, domain.PathMinorDirectorate},
		{"major unit", domain.ComplaintMajor, domain.ScopeUnit, domain.PathMajorUnit},
		{"major directorate", domain.ComplaintMajor, domain.ScopeDirectorate, domain.PathMajorDirectorate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PathFor(tt.complaintType, tt.scope)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathFor_UnknownCombination(t *testing.T) {
	_, err := PathFor("CRITICAL", domain.ScopeUnit)
	require.ErrorIs(t, err, ErrUnknownPath)

	_, err = PathFor(domain.ComplaintMinor, "REGION")
	require.ErrorIs(t, err, ErrUnknownPath)

	_, err = PathFor("", "")
	require.ErrorIs(t, err, ErrUnknownPath)
}

func TestSteps_Sequences(t *testing.T) {
	tests := []struct {
		path  domain.WorkflowPath
		roles []domain.Role
	}{
		{domain.PathMinorUnit, []domain.Role{
			domain.RoleReviewer, domain.RoleHeadOfUnit, domain.RoleAttendee, domain.RoleHeadOfUnit,
		}},
		{domain.PathMinorDirectorate, []domain.Role{
			domain.RoleReviewer, domain.RoleDirector, domain.RoleManager, domain.RoleAttendee, domain.RoleManager,
		}},
		{domain.PathMajorUnit, []domain.Role{
			domain.RoleReviewer, domain.RoleHeadOfUnit, domain.RoleAttendee, domain.RoleHeadOfUnit, domain.RoleDirectorGeneral,
		}},
		{domain.PathMajorDirectorate, []domain.Role{
			domain.RoleReviewer, domain.RoleDirector, domain.RoleManager, domain.RoleAttendee,
			domain.RoleManager, domain.RoleDirector, domain.RoleDirectorGeneral,
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			steps, err := Steps(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.roles, steps)

			total, err := TotalSteps(tt.path)
			require.NoError(t, err)
			assert.Equal(t, len(tt.roles), total)

			for i, role := range tt.roles {
				got, err := RoleAt(tt.path, i+1)
				require.NoError(t, err)
				assert.Equal(t, role, got)
			}
		})
	}
}

func TestRoleAt_OutOfRange(t *testing.T) {
	_, err := RoleAt(domain.PathMinorUnit, 0)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = RoleAt(domain.PathMinorUnit, 5)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSteps_UnknownPath(t *testing.T) {
	_, err := Steps("MEDIUM_UNIT")
	require.ErrorIs(t, err, ErrUnknownPath)

	_, err = TotalSteps("")
	require.ErrorIs(t, err, ErrUnknownPath)
}
