package handler

import (
	"net/http"

	listingshttp "github.com/relevanceai/fetch-listings/http"
)

// Handler is the entry point for the Vercel function served at
// /api/fetch-listings.
func Handler(w http.ResponseWriter, r *http.Request) {
	listingshttp.ServerlessHandler(w, r)
}
