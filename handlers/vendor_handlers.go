package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HandleVendorSearch serves the legacy flat vendor-search contract.
// Unlike the aggregator endpoint it responds with a bare JSON array,
// which is what its existing consumers parse.
// GET /search?q=<text>
func (h *Handler) HandleVendorSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Please enter a product name to search",
		})
	}

	if h.Vendor == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "error",
			"message": "Vendor search is not configured",
		})
	}

	listings, err := h.Vendor.Search(c.Context(), query)
	if err != nil {
		log.Printf("Vendor search error for query %q: %v", query, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Error searching products. Make sure the vendor backend is reachable.",
		})
	}

	return c.JSON(listings)
}
