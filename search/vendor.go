package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"app/models"
)

// VendorClient talks to the legacy vendor search backend:
// GET <base>/search?q=<text> -> [{"name", "vendor", "price", "link"}].
// This predates the aggregator contract and is kept as its own
// integration point.
type VendorClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewVendorClient creates a client for the legacy vendor API.
func NewVendorClient(baseURL string) *VendorClient {
	return &VendorClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Search fetches flat vendor listings matching query.
func (c *VendorClient) Search(ctx context.Context, query string) ([]models.VendorListing, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s", c.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building vendor search request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vendor search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("vendor search API returned status %d", resp.StatusCode)
	}

	var listings []models.VendorListing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("decoding vendor search response: %w", err)
	}

	if listings == nil {
		listings = []models.VendorListing{}
	}
	return listings, nil
}
