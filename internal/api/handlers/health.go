package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler provides a minimal liveness check endpoint.
type HealthHandler struct {
	Log *slog.Logger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, h.Log, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, h.Log, http.StatusOK, map[string]string{"status": "ok"})
}
