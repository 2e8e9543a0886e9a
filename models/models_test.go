package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductKeyPrefersModel(t *testing.T) {
	p := Product{Name: "Phone X", Model: "X123"}
	assert.Equal(t, "X123", p.Key())

	p.Model = ""
	assert.Equal(t, "Phone X", p.Key())
}

func TestPriceEntryAvailability(t *testing.T) {
	assert.True(t, PriceEntry{Price: 1}.Available())
	assert.False(t, PriceEntry{Price: 0}.Available())
	assert.False(t, PriceEntry{Price: -5}.Available())
}

func TestProductBestPicksLowestAvailable(t *testing.T) {
	p := Product{
		Name: "Phone X",
		Prices: map[string]PriceEntry{
			PlatformFlipkart: {Price: 520, URL: "f"},
			PlatformAmazon:   {Price: 500, URL: "a"},
			PlatformReliance: {Price: 0, URL: "r"},
			PlatformCroma:    {Price: 530, URL: "c"},
		},
	}

	best := p.Best()
	require.NotNil(t, best)
	assert.Equal(t, PlatformAmazon, best.Platform)
	assert.Equal(t, 500.0, best.Price)
	assert.Equal(t, "a", best.URL)
}

func TestProductBestNoneAvailable(t *testing.T) {
	p := Product{
		Name: "Phone X",
		Prices: map[string]PriceEntry{
			PlatformAmazon: {Price: 0},
		},
	}
	assert.Nil(t, p.Best())

	empty := Product{Name: "Phone Y"}
	assert.Nil(t, empty.Best())
}

func TestProductImageFirstAvailable(t *testing.T) {
	p := Product{
		Name: "Phone X",
		Prices: map[string]PriceEntry{
			PlatformFlipkart: {Price: 520},
			PlatformAmazon:   {Price: 500, Image: "https://img.example/a.jpg"},
			PlatformCroma:    {Price: 530, Image: "https://img.example/c.jpg"},
		},
	}
	assert.Equal(t, "https://img.example/a.jpg", p.Image())

	assert.Empty(t, Product{Name: "Phone Y"}.Image())
}
