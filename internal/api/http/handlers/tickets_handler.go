package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/escalation-service/internal/api/dto"
	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/repository"
	"github.com/spec-kit/escalation-service/internal/service"
	"github.com/spec-kit/escalation-service/internal/workflow"
	apperrors "github.com/spec-kit/escalation-service/pkg/util/errorutil"
)

// TicketsHandler manages complaint intake endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Description == "" {
		return apperrors.NewValidationError("title and description required", nil)
	}

	ticket, err := h.service.CreateTicket(c.Context(), service.TicketCreateInput{
		Title:         req.Title,
		Description:   req.Description,
		CallerName:    req.CallerName,
		CallerPhone:   req.CallerPhone,
		ComplaintType: req.ComplaintType,
		Scope:         req.Scope,
	})
	if err != nil {
		return err
	}
	resp, err := ticketResponse(ticket)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": resp})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	resp, err := ticketResponse(ticket)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	filter := parseTicketQuery(c)
	tickets, err := h.service.ListTickets(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp, err := ticketResponse(&tickets[i])
		if err != nil {
			return err
		}
		items = append(items, *resp)
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func parseTicketQuery(c *fiber.Ctx) repository.TicketFilter {
	filter := repository.TicketFilter{}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			filter.Statuses = append(filter.Statuses, domain.TicketStatus(strings.TrimSpace(part)))
		}
	}
	if pathStr := c.Query("path"); pathStr != "" {
		for _, part := range strings.Split(pathStr, ",") {
			filter.Paths = append(filter.Paths, domain.WorkflowPath(strings.TrimSpace(part)))
		}
	}
	if roleStr := c.Query("assigned_role"); roleStr != "" {
		for _, part := range strings.Split(roleStr, ",") {
			filter.Roles = append(filter.Roles, domain.Role(strings.TrimSpace(part)))
		}
	}
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize
	return filter
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func ticketResponse(ticket *domain.Ticket) (*dto.TicketResponse, error) {
	view, err := workflow.Project(ticket)
	if err != nil {
		return nil, err
	}
	return &dto.TicketResponse{
		ID:            ticket.ID,
		ExternalKey:   ticket.ExternalKey,
		Title:         ticket.Title,
		Description:   ticket.Description,
		CallerName:    ticket.CallerName,
		CallerPhone:   ticket.CallerPhone,
		ComplaintType: ticket.ComplaintType,
		Scope:         ticket.Scope,
		Status:        ticket.Status,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
		ClosedAt:      ticket.ClosedAt,
		Workflow:      view,
	}, nil
}
