// Package rest implements the HTTP API: auth, journal submission and
// lifecycle, derived record listings, and health probes.
package rest

import (
	"net/http"
	"strconv"
)

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// paginationResponse wraps list payloads with their total count.
type paginationResponse struct {
	Items any `json:"items"`
	Total int `json:"total"`
}

// parsePagination reads limit/offset query parameters. Missing or malformed
// values fall back to zero; the services apply defaults and bounds.
func parsePagination(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
