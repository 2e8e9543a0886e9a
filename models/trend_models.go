package models

// TrendDataset is one platform's line on the price-trend chart. Data
// is aligned index-for-index with the shared date axis; nil marks a
// date with no recorded price so the renderer leaves a gap instead of
// plotting zero.
type TrendDataset struct {
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor"`
	BackgroundColor string     `json:"backgroundColor"`
}

// TrendSeries is the full chart payload for one product: an ordered
// ISO-date axis plus one dataset per platform.
type TrendSeries struct {
	Title    string         `json:"title"`
	Labels   []string       `json:"labels"`
	Datasets []TrendDataset `json:"datasets"`
}

// ComparisonRow is one platform row of the detail comparison table.
type ComparisonRow struct {
	Platform  string  `json:"platform"`
	Name      string  `json:"name"`
	Available bool    `json:"available"`
	Price     float64 `json:"price,omitempty"`
	Display   string  `json:"display"`
	URL       string  `json:"url,omitempty"`
}

// Comparison is the detail view for a selected product.
type Comparison struct {
	Product string          `json:"product"`
	Rows    []ComparisonRow `json:"rows"`
	Best    *BestPrice      `json:"best,omitempty"`
}
