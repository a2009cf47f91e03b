package api

import (
	"log/slog"
	"net/http"

	"github.com/nordgrid/sweref/internal/api/handlers"
)

// NewRouter wires the HTTP handlers with their dependencies and returns an
// http.Handler. Handlers stay unaware of the concrete converter.
func NewRouter(conv handlers.Converter, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	convertHandler := &handlers.ConvertHandler{Converter: conv, Log: log}
	healthHandler := &handlers.HealthHandler{Log: log}

	mux.HandleFunc("/healthz", healthHandler.Health)
	mux.HandleFunc("/convert", convertHandler.Convert)

	return mux
}
