package handler

import (
	"net/http"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// Health returns the health status of the service
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services := make(map[string]string)

	// Check the hand-off store when it has a live backend
	if hc, ok := h.store.(healthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			services["handoff"] = "unhealthy"
		} else {
			services["handoff"] = "healthy"
		}
	}

	// Determine overall status
	status := "healthy"
	for _, s := range services {
		if s == "unhealthy" {
			status = "degraded"
			break
		}
	}

	resp := HealthResponse{
		Status:   status,
		Version:  "0.1.0",
		Services: services,
	}

	if status != "healthy" {
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Ready returns whether the service is ready to accept requests. The mail
// transport is verified here rather than per probe on /health because the
// SMTP handshake is comparatively expensive.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if hc, ok := h.store.(healthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			http.Error(w, "hand-off store not ready", http.StatusServiceUnavailable)
			return
		}
	}

	if err := h.sender.Verify(ctx); err != nil {
		http.Error(w, "mail transport not ready", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
