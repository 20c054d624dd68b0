package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/events"
	"github.com/spec-kit/escalation-service/internal/repository"
	"github.com/spec-kit/escalation-service/internal/workflow"
)

// WorkflowService applies escalation transitions to tickets. Every action is
// load → authorize → compute → persist (compare-and-swap) → audit → publish.
// Failed attempts leave the ticket and audit trail untouched.
type WorkflowService struct {
	tickets    repository.TicketRepository
	state      repository.WorkflowStateRepository
	audit      repository.AuditTrailRepository
	cache      repository.ProjectionCache
	dispatcher events.Dispatcher
}

// WorkflowDependencies bundles repositories for the workflow service.
type WorkflowDependencies struct {
	TicketRepo repository.TicketRepository
	StateRepo  repository.WorkflowStateRepository
	AuditRepo  repository.AuditTrailRepository
	Cache      repository.ProjectionCache
	Dispatcher events.Dispatcher
}

// NewWorkflowService constructs the service.
func NewWorkflowService(deps WorkflowDependencies) *WorkflowService {
	return &WorkflowService{
		tickets:    deps.TicketRepo,
		state:      deps.StateRepo,
		audit:      deps.AuditRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// Attend marks the ticket in progress at its current step.
func (s *WorkflowService) Attend(ctx context.Context, role domain.Role, ticketID, notes string) (*domain.Ticket, *workflow.ProjectedView, error) {
	return s.apply(ctx, ticketID, func(snap workflow.Snapshot) (*workflow.Transition, error) {
		return workflow.Attend(snap, role, notes)
	})
}

// Recommend advances the ticket one step.
func (s *WorkflowService) Recommend(ctx context.Context, role domain.Role, ticketID, notes string, evidenceURL *string) (*domain.Ticket, *workflow.ProjectedView, error) {
	return s.apply(ctx, ticketID, func(snap workflow.Snapshot) (*workflow.Transition, error) {
		return workflow.Recommend(snap, role, notes, evidenceURL)
	})
}

// Reverse sends the ticket back one step.
func (s *WorkflowService) Reverse(ctx context.Context, role domain.Role, ticketID, reason string) (*domain.Ticket, *workflow.ProjectedView, error) {
	return s.apply(ctx, ticketID, func(snap workflow.Snapshot) (*workflow.Transition, error) {
		return workflow.Reverse(snap, role, reason)
	})
}

// Close finalizes the ticket at its terminal step.
func (s *WorkflowService) Close(ctx context.Context, role domain.Role, ticketID, closureNotes string) (*domain.Ticket, *workflow.ProjectedView, error) {
	return s.apply(ctx, ticketID, func(snap workflow.Snapshot) (*workflow.Transition, error) {
		return workflow.Close(snap, role, closureNotes)
	})
}

// Projection returns the display-ready workflow summary for a ticket,
// served from cache when possible.
func (s *WorkflowService) Projection(ctx context.Context, ticketID string) (*workflow.ProjectedView, error) {
	if s.cache != nil {
		if view, err := s.cache.Get(ctx, ticketID); err == nil && view != nil {
			return view, nil
		}
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	view, err := workflow.Project(ticket)
	if err != nil {
		return nil, err
	}
	s.cacheProjection(ctx, ticketID, view)
	return view, nil
}

// History returns the ordered audit trail for a ticket, oldest first.
func (s *WorkflowService) History(ctx context.Context, ticketID string) ([]domain.AuditRecord, error) {
	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		return nil, err
	}
	return s.audit.ListByTicket(ctx, ticketID)
}

func (s *WorkflowService) apply(ctx context.Context, ticketID string, compute func(workflow.Snapshot) (*workflow.Transition, error)) (*domain.Ticket, *workflow.ProjectedView, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}

	snap := workflow.SnapshotOf(ticket)
	transition, err := compute(snap)
	if err != nil {
		return nil, nil, err
	}

	ticket.CurrentStep = transition.ToStep
	ticket.Status = transition.ToStatus
	ticket.AssignedRole = transition.AssignedRole
	if transition.Completed {
		ticket.WorkflowCompleted = true
		now := time.Now()
		ticket.ClosedAt = &now
	}

	record := &domain.AuditRecord{
		TicketID:    ticket.ID,
		FromStep:    transition.FromStep,
		ToStep:      transition.ToStep,
		Action:      transition.Action,
		ActingRole:  transition.ActingRole,
		Notes:       transition.Notes,
		EvidenceURL: transition.EvidenceURL,
	}

	if err := s.state.ApplyTransition(ctx, ticket, snap.Step, snap.Status, record); err != nil {
		return nil, nil, err
	}

	view, err := workflow.Project(ticket)
	if err != nil {
		return nil, nil, err
	}
	s.cacheProjection(ctx, ticket.ID, view)
	s.publishTransition(ctx, ticket, transition)
	return ticket, view, nil
}

func (s *WorkflowService) cacheProjection(ctx context.Context, ticketID string, view *workflow.ProjectedView) {
	if s.cache == nil {
		return
	}
	// Cache refresh is best-effort; the projector remains the source of truth.
	_ = s.cache.Set(ctx, ticketID, view)
}

func (s *WorkflowService) publishTransition(ctx context.Context, ticket *domain.Ticket, transition *workflow.Transition) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.TypeForAction(transition.Action),
		TicketID:  ticket.ID,
		Actor:     events.Actor{Role: transition.ActingRole},
		Timestamp: time.Now(),
		Payload: events.WorkflowTransitionPayload{
			Action:     transition.Action,
			FromStep:   transition.FromStep,
			ToStep:     transition.ToStep,
			FromStatus: transition.FromStatus,
			ToStatus:   transition.ToStatus,
			ActingRole: transition.ActingRole,
			Completed:  transition.Completed,
		},
	}
	_ = s.dispatcher.Publish(ctx, event)
}
