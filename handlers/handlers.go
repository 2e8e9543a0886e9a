package handlers

import (
	"app/history"
	"app/search"
)

// Handler carries the dependencies shared by all HTTP handlers. The
// history store and the upstream clients are injected so tests can
// swap in in-memory backends and stub servers.
type Handler struct {
	Store      *history.Store
	Search     *search.Client
	Vendor     *search.VendorClient
	LoadStatus history.LoadStatus
}

// New creates a Handler. vendor may be nil when the legacy vendor
// integration is not configured.
func New(store *history.Store, searchClient *search.Client, vendor *search.VendorClient, loadStatus history.LoadStatus) *Handler {
	return &Handler{
		Store:      store,
		Search:     searchClient,
		Vendor:     vendor,
		LoadStatus: loadStatus,
	}
}
