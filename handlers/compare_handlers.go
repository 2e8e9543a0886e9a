package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"app/models"
	"app/utils"
)

// HandleCompare builds the detail comparison table for the product
// posted in the request body: one row per platform in display order,
// with the lowest available offer called out separately.
// POST /api/v1/compare
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing compare request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	if product.Key() == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product name or model is required"})
	}

	rows := make([]models.ComparisonRow, 0, len(models.Platforms))
	for _, platform := range models.Platforms {
		row := models.ComparisonRow{
			Platform: platform,
			Name:     models.PlatformDisplayNames[platform],
			Display:  "Not Available",
		}
		if entry, ok := product.Price(platform); ok {
			row.Available = true
			row.Price = entry.Price
			row.Display = "₹" + utils.FormatPrice(entry.Price)
			row.URL = entry.URL
		}
		rows = append(rows, row)
	}

	comparison := models.Comparison{
		Product: product.Name,
		Rows:    rows,
		Best:    product.Best(),
	}
	return c.JSON(fiber.Map{"status": "success", "data": comparison})
}
