package handlers

import (
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"app/chart"
	"app/models"
)

// HandleGetTrend builds the price-trend series for the product posted
// in the request body. The live product is posted rather than looked
// up server-side so today's point always reflects the prices the user
// is currently seeing, even if the history write for them failed.
// POST /api/v1/trend
func (h *Handler) HandleGetTrend(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing trend request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	if product.Key() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product name or model is required"})
	}

	series := chart.BuildFromStore(product, h.Store)
	return c.JSON(fiber.Map{"status": "success", "data": series})
}

// HandleGetHistory returns the raw recorded history for a product key:
// every retained date with the positive prices stored for it.
// GET /api/v1/history/:key
func (h *Handler) HandleGetHistory(c *fiber.Ctx) error {
	key := c.Params("key")
	if decoded, err := url.PathUnescape(key); err == nil {
		key = decoded
	}
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product key is required"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"key":     key,
			"dates":   h.Store.Dates(key),
			"history": h.Store.ProductHistory(key),
		},
	})
}
