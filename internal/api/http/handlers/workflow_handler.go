package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/escalation-service/internal/api/dto"
	"github.com/spec-kit/escalation-service/internal/auth"
	"github.com/spec-kit/escalation-service/internal/domain"
	"github.com/spec-kit/escalation-service/internal/service"
	apperrors "github.com/spec-kit/escalation-service/pkg/util/errorutil"
)

// WorkflowHandler manages escalation workflow endpoints.
type WorkflowHandler struct {
	service *service.WorkflowService
}

// NewWorkflowHandler constructs handler.
func NewWorkflowHandler(workflowService *service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: workflowService}
}

// Attend POST /workflow/ticket/:id/attend.
func (h *WorkflowHandler) Attend(c *fiber.Ctx) error {
	role, err := actingRole(c)
	if err != nil {
		return err
	}
	var req dto.AttendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, view, err := h.service.Attend(c.Context(), role, c.Params("id"), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": view})
}

// Recommend POST /workflow/ticket/:id/recommend.
func (h *WorkflowHandler) Recommend(c *fiber.Ctx) error {
	role, err := actingRole(c)
	if err != nil {
		return err
	}
	var req dto.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, view, err := h.service.Recommend(c.Context(), role, c.Params("id"), req.RecommendationNotes, req.EvidenceURL)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": view})
}

// Reverse POST /workflow/ticket/:id/reverse.
func (h *WorkflowHandler) Reverse(c *fiber.Ctx) error {
	role, err := actingRole(c)
	if err != nil {
		return err
	}
	var req dto.ReverseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, view, err := h.service.Reverse(c.Context(), role, c.Params("id"), req.ReversalReason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": view})
}

// Close POST /workflow/ticket/:id/close.
func (h *WorkflowHandler) Close(c *fiber.Ctx) error {
	role, err := actingRole(c)
	if err != nil {
		return err
	}
	var req dto.CloseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, view, err := h.service.Close(c.Context(), role, c.Params("id"), req.ClosureNotes)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": view})
}

// Projection GET /workflow/ticket/:id.
func (h *WorkflowHandler) Projection(c *fiber.Ctx) error {
	view, err := h.service.Projection(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "workflow": view})
}

// History GET /workflow/ticket/:id/history.
func (h *WorkflowHandler) History(c *fiber.Ctx) error {
	records, err := h.service.History(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.AuditRecordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, auditRecordResponse(record))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

func actingRole(c *fiber.Ctx) (domain.Role, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return "", apperrors.NewUnauthorized("agent required")
	}
	return principal.Role, nil
}

func auditRecordResponse(record domain.AuditRecord) dto.AuditRecordResponse {
	return dto.AuditRecordResponse{
		ID:          record.ID,
		TicketID:    record.TicketID,
		FromStep:    record.FromStep,
		ToStep:      record.ToStep,
		Action:      record.Action,
		ActingRole:  record.ActingRole,
		Notes:       record.Notes,
		EvidenceURL: record.EvidenceURL,
		CreatedAt:   record.CreatedAt,
	}
}
