package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/api/http/handlers"
	"github.com/a1technologies/cooling-crm/internal/auth"
	"github.com/a1technologies/cooling-crm/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Metrics         *handlers.MetricsHandler
	Auth            *handlers.AuthHandler
	Products        *handlers.ProductsHandler
	ServiceRequests *handlers.ServiceRequestsHandler
	Content         *handlers.ContentHandler
	Views           *handlers.ViewsHandler
	AuthMiddleware  *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Page routes go last since they catch every other GET.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	admin := auth.RequireRole(domain.RoleAdmin)
	technician := auth.RequireRole(domain.RoleTechnician)
	customer := auth.RequireRole(domain.RoleCustomer)

	products := api.Group("/products")
	products.Get("/", cfg.Products.List)
	products.Get("/:id", cfg.Products.Get)
	products.Post("/", cfg.AuthMiddleware.Handle, admin, cfg.Products.Create)
	products.Put("/:id", cfg.AuthMiddleware.Handle, admin, cfg.Products.Update)
	products.Delete("/:id", cfg.AuthMiddleware.Handle, admin, cfg.Products.Delete)

	requests := api.Group("/service-requests", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	requests.Post("/", customer, cfg.ServiceRequests.Create)
	requests.Get("/mine", customer, cfg.ServiceRequests.Mine)
	requests.Get("/assigned", technician, cfg.ServiceRequests.Assigned)
	requests.Get("/", admin, cfg.ServiceRequests.List)
	requests.Get("/:id", admin, cfg.ServiceRequests.Get)
	requests.Get("/:id/history", admin, cfg.ServiceRequests.History)
	requests.Post("/:id/assign", admin, cfg.ServiceRequests.Assign)
	requests.Post("/:id/complete", technician, cfg.ServiceRequests.Complete)

	api.Get("/technicians", cfg.AuthMiddleware.Handle, admin, cfg.ServiceRequests.Technicians)

	content := api.Group("/content")
	content.Get("/", cfg.Content.Get)
	editor := content.Group("", cfg.AuthMiddleware.Handle, admin)
	editor.Put("/hero", cfg.Content.UpdateHero)
	editor.Put("/about", cfg.Content.UpdateAbout)
	editor.Put("/stats", cfg.Content.ReplaceStats)
	editor.Put("/features", cfg.Content.ReplaceFeatures)
	editor.Put("/testimonials", cfg.Content.UpsertTestimonial)
	editor.Delete("/testimonials/:id", cfg.Content.DeleteTestimonial)
	editor.Post("/persist", cfg.Content.Persist)

	api.All("/*", func(*fiber.Ctx) error { return fiber.ErrNotFound })

	app.Get("/*", cfg.AuthMiddleware.Optional, cfg.Views.Serve)
}
