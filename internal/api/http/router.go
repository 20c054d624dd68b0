package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/escalation-service/internal/api/http/handlers"
	"github.com/spec-kit/escalation-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Workflow       *handlers.WorkflowHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/agents/register", cfg.Auth.Register)
	app.Post("/auth/agents/login", cfg.Auth.Login)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle, auth.RequireAgent())
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/:id", cfg.Tickets.GetTicket)

	workflow := app.Group("/workflow/ticket", cfg.AuthMiddleware.Handle, auth.RequireAgent())
	workflow.Get("/:id", cfg.Workflow.Projection)
	workflow.Get("/:id/history", cfg.Workflow.History)
	workflow.Post("/:id/attend", cfg.Workflow.Attend)
	workflow.Post("/:id/recommend", cfg.Workflow.Recommend)
	workflow.Post("/:id/reverse", cfg.Workflow.Reverse)
	workflow.Post("/:id/close", cfg.Workflow.Close)
}
