package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/history"
	"app/search"
)

// newSearchApp wires a fiber app with the search route, an in-memory
// history store and a stub upstream.
func newSearchApp(t *testing.T, upstream http.HandlerFunc) (*fiber.App, *Handler, *history.MemoryBlob) {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	blob := &history.MemoryBlob{}
	store, status := history.Open(context.Background(), blob)
	h := New(store, search.NewClient(server.URL), nil, status)

	app := fiber.New()
	app.Get("/api/v1/search", h.HandleSearch)
	return app, h, blob
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

const upstreamPayload = `{"products":[
	{"name":"Phone X","model":"X123","prices":{
		"amazon":{"price":500,"url":"https://amazon.example/x"},
		"flipkart":{"price":0,"url":"https://flipkart.example/x"},
		"croma":{"price":520,"url":"https://croma.example/x","image":"https://img.example/x.jpg"}
	}}
]}`

func TestHandleSearchEmptyQuery(t *testing.T) {
	app, _, _ := newSearchApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for an empty query")
	})

	for _, target := range []string{"/api/v1/search", "/api/v1/search?query=", "/api/v1/search?query=%20%20"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Please enter a product name to search", body["message"])
	}
}

func TestHandleSearchUpstreamUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	blob := &history.MemoryBlob{}
	store, status := history.Open(context.Background(), blob)
	h := New(store, search.NewClient(server.URL), nil, status)

	app := fiber.New()
	app.Get("/api/v1/search", h.HandleSearch)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?query=phone", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "search backend")
}

func TestHandleSearchNoMatchesIsNotAnError(t *testing.T) {
	app, _, blob := newSearchApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[]}`))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?query=unobtainium", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["message"], "No products found")
	assert.Nil(t, blob.Bytes(), "an empty result set must not touch the history")
}

func TestHandleSearchReturnsBestPriceAndRecordsHistory(t *testing.T) {
	app, h, blob := newSearchApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "phone x", r.URL.Query().Get("query"))
		w.Write([]byte(upstreamPayload))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?query=phone+x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Nil(t, body["warning"])

	data := body["data"].(map[string]any)
	products := data["products"].([]any)
	require.Len(t, products, 1)

	first := products[0].(map[string]any)
	best := first["best"].(map[string]any)
	assert.Equal(t, "amazon", best["platform"])
	assert.Equal(t, 500.0, best["price"])
	assert.Equal(t, "https://img.example/x.jpg", first["image"])

	// Today's positive prices landed in the store; the zero-priced
	// flipkart entry did not.
	today := history.Today()
	assert.Equal(t, []string{today}, h.Store.Dates("X123"))
	series := h.Store.Series("X123", []string{"amazon", "flipkart", "croma"}, []string{today})
	assert.Equal(t, 500.0, series["amazon"][today])
	assert.Equal(t, 520.0, series["croma"][today])
	assert.Empty(t, series["flipkart"])
	assert.NotNil(t, blob.Bytes())
}

func TestHandleSearchWriteFailureWarnsButSucceeds(t *testing.T) {
	app, _, blob := newSearchApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(upstreamPayload))
	})
	blob.WriteErr = errors.New("disk full")

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?query=phone", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["warning"], "could not be saved")

	data := body["data"].(map[string]any)
	assert.Len(t, data["products"].([]any), 1)
}

func TestHandleVendorSearch(t *testing.T) {
	vendorUpstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "laptop", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"name":"Laptop","vendor":"TechMart","price":85000,"link":"https://techmart.example/l"}]`))
	}))
	t.Cleanup(vendorUpstream.Close)

	blob := &history.MemoryBlob{}
	store, status := history.Open(context.Background(), blob)
	h := New(store, nil, search.NewVendorClient(vendorUpstream.URL), status)

	app := fiber.New()
	app.Get("/search", h.HandleVendorSearch)

	resp, err := app.Test(httptest.NewRequest("GET", "/search?q=laptop", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Legacy contract: a bare array, no envelope.
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var listings []map[string]any
	require.NoError(t, json.Unmarshal(raw, &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "TechMart", listings[0]["vendor"])
}

func TestHandleVendorSearchNotConfigured(t *testing.T) {
	blob := &history.MemoryBlob{}
	store, status := history.Open(context.Background(), blob)
	h := New(store, nil, nil, status)

	app := fiber.New()
	app.Get("/search", h.HandleVendorSearch)

	resp, err := app.Test(httptest.NewRequest("GET", "/search?q=laptop", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
