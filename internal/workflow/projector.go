package workflow

import (
	"fmt"
	"math"

	"github.com/spec-kit/escalation-service/internal/domain"
)

// ProjectedView is the display-ready workflow summary rendered by dashboards.
// Field names match the client contract exactly.
type ProjectedView struct {
	Path             domain.WorkflowPath `json:"path"`
	CurrentStep      int                 `json:"currentStep"`
	TotalSteps       int                 `json:"totalSteps"`
	CurrentStepLabel string              `json:"currentStepLabel"`
	CurrentRole      domain.Role         `json:"currentRole"`
	NextRole         *domain.Role        `json:"nextRole"`
	Progress         int                 `json:"progress"`
	IsTerminal       bool                `json:"isTerminal"`
}

// Project builds the progress summary for a ticket. Pure; catalog lookups
// only, cheap enough to run on every dashboard render.
func Project(t *domain.Ticket) (*ProjectedView, error) {
	total, err := TotalSteps(t.WorkflowPath)
	if err != nil {
		return nil, err
	}
	current, err := RoleAt(t.WorkflowPath, t.CurrentStep)
	if err != nil {
		return nil, err
	}

	var next *domain.Role
	if t.CurrentStep < total {
		role, err := RoleAt(t.WorkflowPath, t.CurrentStep+1)
		if err != nil {
			return nil, err
		}
		next = &role
	}

	return &ProjectedView{
		Path:             t.WorkflowPath,
		CurrentStep:      t.CurrentStep,
		TotalSteps:       total,
		CurrentStepLabel: fmt.Sprintf("Step %d of %d", t.CurrentStep, total),
		CurrentRole:      current,
		NextRole:         next,
		Progress:         int(math.Round(float64(t.CurrentStep) / float64(total) * 100)),
		IsTerminal:       t.WorkflowCompleted,
	}, nil
}
