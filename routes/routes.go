package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Get("/health", h.HandleHealth)

	// Legacy flat vendor-search contract. Lives outside /api/v1 and
	// returns a bare JSON array; do not fold into the aggregator API.
	app.Get("/search", h.HandleVendorSearch)

	api := app.Group("/api/v1")

	api.Get("/search", h.HandleSearch)
	api.Post("/trend", h.HandleGetTrend)
	api.Post("/compare", h.HandleCompare)
	api.Get("/history/:key", h.HandleGetHistory)
}
