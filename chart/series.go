// Package chart assembles the date-aligned, per-platform price series
// consumed by the trend chart on the product detail view.
package chart

import (
	"fmt"
	"sort"
	"strings"

	"app/history"
	"app/models"
)

// WindowDays caps the date axis to the most recent entries. It matches
// the store's retention window, but it is a display cap: the builder
// enforces it even if the store were to hold more.
const WindowDays = 30

// platformColors holds the brand RGB channels per platform.
var platformColors = map[string][3]int{
	models.PlatformFlipkart: {40, 116, 240},
	models.PlatformAmazon:   {255, 153, 0},
	models.PlatformReliance: {0, 102, 204},
	models.PlatformCroma:    {220, 38, 38},
}

// defaultColor backs any platform identifier without a brand color.
var defaultColor = [3]int{102, 126, 234}

// Color returns the rgba() display color for a platform at the given
// alpha.
func Color(platform string, alpha float64) string {
	rgb, ok := platformColors[platform]
	if !ok {
		rgb = defaultColor
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", rgb[0], rgb[1], rgb[2], alpha)
}

// Build assembles the trend payload for one product: the ascending
// date axis (recorded history plus today, capped to the most recent
// WindowDays) and one nullable series per platform.
//
// Today's point always comes from the live product, not from whatever
// was persisted, so the chart reflects the just-fetched price even
// when the history write failed or has not happened yet.
func Build(product models.Product, hist map[string]map[string]float64, today string) models.TrendSeries {
	dates := make([]string, 0, len(hist)+1)
	for date := range hist {
		if date != today {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	dates = append(dates, today)
	if len(dates) > WindowDays {
		dates = dates[len(dates)-WindowDays:]
	}

	datasets := make([]models.TrendDataset, 0, len(models.Platforms))
	for _, platform := range models.Platforms {
		data := make([]*float64, len(dates))
		for i, date := range dates {
			if date == today {
				if entry, ok := product.Price(platform); ok {
					price := entry.Price
					data[i] = &price
				}
				continue
			}
			if price, ok := hist[date][platform]; ok {
				p := price
				data[i] = &p
			}
		}
		datasets = append(datasets, models.TrendDataset{
			Label:           label(platform),
			Data:            data,
			BorderColor:     Color(platform, 1),
			BackgroundColor: Color(platform, 0.1),
		})
	}

	return models.TrendSeries{
		Title:    "Price Trend: " + product.Name,
		Labels:   dates,
		Datasets: datasets,
	}
}

// BuildFromStore reads the product's recorded history from the store
// and builds the series for the current UTC date.
func BuildFromStore(product models.Product, store *history.Store) models.TrendSeries {
	return Build(product, store.ProductHistory(product.Key()), history.Today())
}

// label capitalizes a platform identifier for the chart legend.
func label(platform string) string {
	if platform == "" {
		return platform
	}
	return strings.ToUpper(platform[:1]) + platform[1:]
}
