package workflow

import (
	"fmt"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// pathSteps fixes the ordered role sequence for each escalation path.
// Step indices are 1-based; steps[i-1] is the role responsible at step i.
var pathSteps = map[domain.WorkflowPath][]domain.Role{
	domain.PathMinorUnit: {
		domain.RoleReviewer,
		domain.RoleHeadOfUnit,
		domain.RoleAttendee,
		domain.RoleHeadOfUnit,
	},
	domain.PathMinorDirectorate: {
		domain.RoleReviewer,
		domain.RoleDirector,
		domain.RoleManager,
		domain.RoleAttendee,
		domain.RoleManager,
	},
	domain.PathMajorUnit: {
		domain.RoleReviewer,
		domain.RoleHeadOfUnit,
		domain.RoleAttendee,
		domain.RoleHeadOfUnit,
		domain.RoleDirectorGeneral,
	},
	domain.PathMajorDirectorate: {
		domain.RoleReviewer,
		domain.RoleDirector,
		domain.RoleManager,
		domain.RoleAttendee,
		domain.RoleManager,
		domain.RoleDirector,
		domain.RoleDirectorGeneral,
	},
}

// PathFor derives the escalation path for a categorized complaint.
func PathFor(complaintType domain.ComplaintType, scope domain.ComplaintScope) (domain.WorkflowPath, error) {
	switch {
	case complaintType == domain.ComplaintMinor && scope == domain.ScopeUnit:
		return domain.PathMinorUnit, nil
	case complaintType == domain.ComplaintMinor && scope == domain.ScopeDirectorate:
		return domain.PathMinorDirectorate, nil
	case complaintType == domain.ComplaintMajor && scope == domain.ScopeUnit:
		return domain.PathMajorUnit, nil
	case complaintType == domain.ComplaintMajor && scope == domain.ScopeDirectorate:
		return domain.PathMajorDirectorate, nil
	default:
		return "", fmt.Errorf("%w: no path for complaint type %q scope %q", ErrUnknownPath, complaintType, scope)
	}
}

// Steps returns the ordered role sequence for a path.
func Steps(path domain.WorkflowPath) ([]domain.Role, error) {
	steps, ok := pathSteps[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return steps, nil
}

// TotalSteps returns the number of steps in a path.
func TotalSteps(path domain.WorkflowPath) (int, error) {
	steps, err := Steps(path)
	if err != nil {
		return 0, err
	}
	return len(steps), nil
}

// RoleAt returns the role responsible at a 1-based step of a path.
func RoleAt(path domain.WorkflowPath, step int) (domain.Role, error) {
	steps, err := Steps(path)
	if err != nil {
		return "", err
	}
	if step < 1 || step > len(steps) {
		return "", fmt.Errorf("%w: step %d outside [1,%d] of path %s", ErrInvalidTransition, step, len(steps), path)
	}
	return steps[step-1], nil
}
