package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS lets the browser extension call the API. An empty origin list
// allows every origin.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler(next)
}
