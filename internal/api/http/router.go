package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/maintenance-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. A nil AuthMiddleware leaves the
// dashboard routes open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	var guards []fiber.Handler
	if cfg.AuthMiddleware != nil {
		guards = append(guards, cfg.AuthMiddleware.Handle, auth.RequireStaffRole(auth.MaintenanceRoles...))
	}

	app.Get("/maintenance", chain(guards, cfg.Dashboard.Page)...)
	app.Get("/admin/ticket/:id", chain(guards, cfg.Dashboard.GetTicket)...)

	api := app.Group("/api/maintenance", guards...)
	api.Get("/tickets", cfg.Dashboard.List)
}

func chain(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, handler)
}
