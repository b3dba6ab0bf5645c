package api

import (
	"net/http"

	"routefinder/internal/api/handlers"
	"routefinder/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(provider ports.MatrixProvider) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Provider: provider}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Optimize)

	return loggingMiddleware(mux)
}
