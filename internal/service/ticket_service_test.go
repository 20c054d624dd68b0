package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/events"
	"github.com/spec-kit/escalation-service/internal/workflow"
)

func TestCreateTicket_AssignsPathAndFirstStep(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name          string
		complaintType domain.ComplaintType
		scope         domain.ComplaintScope
		wantPath      domain.WorkflowPath
	}{
		{"minor unit", domain.ComplaintMinor, domain.ScopeUnit, domain.PathMinorUnit},
		{"minor directorate", domain.ComplaintMinor, domain.ScopeDirectorate, domain.PathMinorDirectorate},
		{"major unit", domain.ComplaintMajor, domain.ScopeUnit, domain.PathMajorUnit},
		{"major directorate", domain.ComplaintMajor, domain.ScopeDirectorate, domain.PathMajorDirectorate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memoryStore{}
			svc := NewTicketService(store, nil)

			ticket, err := svc.CreateTicket(ctx, TicketCreateInput{
				Title:         "Billing dispute",
				Description:   "Charged twice for the same call package",
				CallerName:    "R. Osei",
				CallerPhone:   "+233200000000",
				ComplaintType: tt.complaintType,
				Scope:         tt.scope,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, ticket.WorkflowPath)
			assert.Equal(t, 1, ticket.CurrentStep)
			assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
			assert.Equal(t, domain.RoleReviewer, ticket.AssignedRole)
			assert.False(t, ticket.WorkflowCompleted)
			assert.True(t, strings.HasPrefix(ticket.ExternalKey, "CMP-"))
			assert.Len(t, ticket.ExternalKey, 12)
		})
	}
}

func TestCreateTicket_UnknownCategorization(t *testing.T) {
	svc := NewTicketService(&memoryStore{}, nil)

	_, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		Title:         "Noise complaint",
		Description:   "Static on every call",
		ComplaintType: "CRITICAL",
		Scope:         domain.ScopeUnit,
	})
	require.ErrorIs(t, err, workflow.ErrUnknownPath)
}

func TestCreateTicket_RequiresTitleAndDescription(t *testing.T) {
	svc := NewTicketService(&memoryStore{}, nil)

	_, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		Title:         "   ",
		Description:   "",
		ComplaintType: domain.ComplaintMinor,
		Scope:         domain.ScopeUnit,
	})
	require.Error(t, err)
}

func TestCreateTicket_PublishesCreatedEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(events.EventTicketCreated, recorder.record)

	svc := NewTicketService(&memoryStore{}, dispatcher)
	_, err := svc.CreateTicket(context.Background(), TicketCreateInput{
		Title:         "Dropped calls",
		Description:   "Calls drop after two minutes",
		ComplaintType: domain.ComplaintMajor,
		Scope:         domain.ScopeDirectorate,
	})
	require.NoError(t, err)
	require.Len(t, recorder.types(), 1)
	assert.Equal(t, events.EventTicketCreated, recorder.types()[0])
}
