package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"app/history"
	"app/models"
)

// searchResult is a product enriched with the derived fields the
// result grid needs: the lowest available offer and a display image.
type searchResult struct {
	models.Product
	Best  *models.BestPrice `json:"best,omitempty"`
	Image string            `json:"image,omitempty"`
}

// HandleSearch proxies a product search to the upstream aggregator,
// records today's prices for every returned product, and returns the
// results with per-product best prices.
// GET /api/v1/search?query=<text>
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Please enter a product name to search",
		})
	}

	products, err := h.Search.Search(c.Context(), query)
	if err != nil {
		log.Printf("Search error for query %q: %v", query, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status":  "error",
			"message": "Error searching products. Make sure the search backend is reachable.",
		})
	}

	if len(products) == 0 {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "No products found. Please try a different search term.",
			"data":    fiber.Map{"products": []searchResult{}},
		})
	}

	// Today's prices go into the history before responding. A failed
	// write must not fail the search: the caller still gets live data,
	// plus a warning it can surface.
	var warning string
	if err := h.Store.RecordToday(c.Context(), products); err != nil {
		log.Printf("Error recording price history for query %q: %v", query, err)
		if errors.Is(err, history.ErrWriteFailed) {
			warning = "Price history could not be saved; trends may miss today's prices on your next visit."
		}
	}

	results := make([]searchResult, 0, len(products))
	for _, product := range products {
		results = append(results, searchResult{
			Product: product,
			Best:    product.Best(),
			Image:   product.Image(),
		})
	}

	resp := fiber.Map{
		"status": "success",
		"data":   fiber.Map{"products": results},
	}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(resp)
}
