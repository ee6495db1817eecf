package router

import (
	"net/http"

	"github.com/festivepros/inquiry/internal/handler"
	"github.com/festivepros/inquiry/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	// Inquiry relay
	mux.HandleFunc("POST /api/mail", h.RelayInquiry)

	// Product hand-off
	mux.HandleFunc("GET /api/products/selected", h.SelectedProduct)
	mux.HandleFunc("PUT /api/products/selected", h.SelectProduct)

	// Wrap with middleware: recover -> request ID -> logging
	var root http.Handler = mux
	root = mw.Logger(root)
	root = mw.RequestID(root)
	root = mw.Recover(root)

	return root
}
