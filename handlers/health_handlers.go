package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports liveness plus how the initial history load
// went, so a corrupt blob is visible in monitoring even though the
// service keeps running with empty history.
// GET /health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"history": h.LoadStatus.String(),
	})
}
