package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/events"
	"github.com/spec-kit/escalation-service/internal/repository"
	"github.com/spec-kit/escalation-service/internal/workflow"
	apperrors "github.com/spec-kit/escalation-service/pkg/util/errorutil"
)

// TicketService handles complaint intake and retrieval. Categorization
// assigns the escalation path; from then on the ticket is mutated only
// through WorkflowService transitions.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketCreateInput describes complaint intake payload.
type TicketCreateInput struct {
	Title         string
	Description   string
	CallerName    string
	CallerPhone   string
	ComplaintType domain.ComplaintType
	Scope         domain.ComplaintScope
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher}
}

// CreateTicket categorizes a complaint and starts its workflow at step 1.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}

	path, err := workflow.PathFor(input.ComplaintType, input.Scope)
	if err != nil {
		return nil, err
	}
	firstRole, err := workflow.RoleAt(path, 1)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ExternalKey:   generateTicketKey(),
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		CallerName:    strings.TrimSpace(input.CallerName),
		CallerPhone:   strings.TrimSpace(input.CallerPhone),
		ComplaintType: input.ComplaintType,
		Scope:         input.Scope,
		WorkflowPath:  path,
		CurrentStep:   1,
		Status:        domain.TicketStatusOpen,
		AssignedRole:  firstRole,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTicketCreated,
			TicketID:  ticket.ID,
			Timestamp: time.Now(),
			Payload: events.TicketCreatedPayload{
				Path:          ticket.WorkflowPath,
				ComplaintType: ticket.ComplaintType,
				Scope:         ticket.Scope,
				Title:         ticket.Title,
			},
		})
	}
	return ticket, nil
}

// GetTicket fetches a ticket by id.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, ticketID)
}

// ListTickets returns tickets matching the dashboard filter.
func (s *TicketService) ListTickets(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	return s.tickets.ListWithFilter(ctx, filter)
}

func generateTicketKey() string {
	return "CMP-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
