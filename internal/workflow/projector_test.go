package workflow

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/escalation-service/internal/domain"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name         string
		path         domain.WorkflowPath
		step         int
		completed    bool
		wantProgress int
		wantCurrent  domain.Role
		wantNext     *domain.Role
		wantLabel    string
	}{
		{
			name:         "minor unit at intake",
			path:         domain.PathMinorUnit,
			step:         1,
			wantProgress: 25,
			wantCurrent:  domain.RoleReviewer,
			wantNext:     roleptr(domain.RoleHeadOfUnit),
			wantLabel:    "Step 1 of 4",
		},
		{
			name:         "major directorate rounds up",
			path:         domain.PathMajorDirectorate,
			step:         2,
			wantProgress: 29,
			wantCurrent:  domain.RoleDirector,
			wantNext:     roleptr(domain.RoleManager),
			wantLabel:    "Step 2 of 7",
		},
		{
			name:         "major directorate mid path",
			path:         domain.PathMajorDirectorate,
			step:         4,
			wantProgress: 57,
			wantCurrent:  domain.RoleAttendee,
			wantNext:     roleptr(domain.RoleManager),
			wantLabel:    "Step 4 of 7",
		},
		{
			name:         "final step has no next role",
			path:         domain.PathMajorUnit,
			step:         5,
			completed:    true,
			wantProgress: 100,
			wantCurrent:  domain.RoleDirectorGeneral,
			wantNext:     nil,
			wantLabel:    "Step 5 of 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := &domain.Ticket{
				WorkflowPath:      tt.path,
				CurrentStep:       tt.step,
				WorkflowCompleted: tt.completed,
			}
			view, err := Project(ticket)
			require.NoError(t, err)
			assert.Equal(t, tt.path, view.Path)
			assert.Equal(t, tt.step, view.CurrentStep)
			assert.Equal(t, tt.wantProgress, view.Progress)
			assert.Equal(t, tt.wantCurrent, view.CurrentRole)
			assert.Equal(t, tt.wantNext, view.NextRole)
			assert.Equal(t, tt.wantLabel, view.CurrentStepLabel)
			assert.Equal(t, tt.completed, view.IsTerminal)
		})
	}
}

func TestProject_JSONContract(t *testing.T) {
	ticket := &domain.Ticket{
		WorkflowPath:      domain.PathMajorUnit,
		CurrentStep:       5,
		WorkflowCompleted: true,
	}
	view, err := Project(ticket)
	require.NoError(t, err)

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "MAJOR_UNIT", decoded["path"])
	assert.Equal(t, float64(5), decoded["currentStep"])
	assert.Equal(t, float64(5), decoded["totalSteps"])
	assert.Equal(t, float64(100), decoded["progress"])
	assert.Contains(t, decoded, "nextRole")
	assert.Nil(t, decoded["nextRole"], "terminal projection serializes nextRole as null")
	assert.Equal(t, true, decoded["isTerminal"])
}

func TestProject_StepOutOfPath(t *testing.T) {
	ticket := &domain.Ticket{
		WorkflowPath: domain.PathMinorUnit,
		CurrentStep:  9,
	}
	_, err := Project(ticket)
	require.Error(t, err)
}

func roleptr(r domain.Role) *domain.Role { return &r }
