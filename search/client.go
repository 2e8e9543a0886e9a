// Package search holds the clients for the two upstream search
// integrations. The aggregator contract (Client) and the legacy flat
// vendor contract (VendorClient) use different endpoints, query
// parameters, and response shapes; they are deliberately kept as
// separate types and never unified.
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

// Client talks to the upstream price aggregator:
// GET <base>/search?query=<text> -> {"products": [...]}.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the aggregator API.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Search fetches product listings matching query. A non-2xx response
// is an error; an empty product list is not.
func (c *Client) Search(ctx context.Context, query string) ([]models.Product, error) {
	endpoint := fmt.Sprintf("%s/search?query=%s", c.BaseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var parsed models.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	if parsed.Products == nil {
		return []models.Product{}, nil
	}
	return parsed.Products, nil
}
