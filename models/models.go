package models

// Platform identifiers for the retailers we aggregate prices from.
// The order here is the display order used by the comparison table
// and the trend chart.
const (
	PlatformFlipkart = "flipkart"
	PlatformAmazon   = "amazon"
	PlatformReliance = "reliance"
	PlatformCroma    = "croma"
)

// Platforms is the fixed set of supported platforms, in display order.
var Platforms = []string{PlatformFlipkart, PlatformAmazon, PlatformReliance, PlatformCroma}

// PlatformDisplayNames maps platform identifiers to user-facing names.
var PlatformDisplayNames = map[string]string{
	PlatformFlipkart: "Flipkart",
	PlatformAmazon:   "Amazon",
	PlatformReliance: "Reliance Digital",
	PlatformCroma:    "Croma",
}

// PriceEntry is a platform's price snapshot for a product at fetch time.
// A price of zero or less means the product is not available on that
// platform; such entries are never compared, stored, or plotted.
type PriceEntry struct {
	Price float64 `json:"price"`
	URL   string  `json:"url"`
	Image string  `json:"image,omitempty"`
}

// Available reports whether the entry carries a usable price.
func (p PriceEntry) Available() bool {
	return p.Price > 0
}

// Product is one catalog entry returned by the upstream search API,
// with zero or more per-platform price entries.
type Product struct {
	Name   string                `json:"name"`
	Model  string                `json:"model,omitempty"`
	Prices map[string]PriceEntry `json:"prices"`
}

// Key returns the identity used to index price history: the model
// number when present, otherwise the product name. History keyed this
// way survives across independent search sessions, at the cost of
// collisions when two catalog entries share a model or name.
func (p Product) Key() string {
	if p.Model != "" {
		return p.Model
	}
	return p.Name
}

// Price returns the entry for a platform when it is available.
func (p Product) Price(platform string) (PriceEntry, bool) {
	entry, ok := p.Prices[platform]
	if !ok || !entry.Available() {
		return PriceEntry{}, false
	}
	return entry, true
}

// Image returns the first image URL found on any platform entry.
func (p Product) Image() string {
	for _, platform := range Platforms {
		if entry, ok := p.Prices[platform]; ok && entry.Image != "" {
			return entry.Image
		}
	}
	return ""
}

// BestPrice is the lowest available offer across platforms.
type BestPrice struct {
	Platform string  `json:"platform"`
	Price    float64 `json:"price"`
	URL      string  `json:"url"`
}

// Best returns the lowest available offer, or nil when no platform
// carries the product. Ties keep the earlier platform in display order.
func (p Product) Best() *BestPrice {
	var best *BestPrice
	for _, platform := range Platforms {
		entry, ok := p.Price(platform)
		if !ok {
			continue
		}
		if best == nil || entry.Price < best.Price {
			best = &BestPrice{Platform: platform, Price: entry.Price, URL: entry.URL}
		}
	}
	return best
}

// SearchResponse is the upstream aggregator's response envelope.
type SearchResponse struct {
	Products []Product `json:"products"`
}

// VendorListing is one result from the legacy flat vendor-search
// integration. It shares nothing with Product; the two contracts are
// independent and are never merged.
type VendorListing struct {
	Name   string  `json:"name"`
	Vendor string  `json:"vendor"`
	Price  float64 `json:"price"`
	Link   string  `json:"link"`
}
