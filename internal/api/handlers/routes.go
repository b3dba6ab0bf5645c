package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"routefinder/internal/api/dto"
	"routefinder/internal/domain"
	"routefinder/internal/ports"
	"routefinder/internal/services"
)

// RouteHandler exposes route optimization over HTTP.
type RouteHandler struct {
	Provider ports.MatrixProvider
}

// Optimize fetches a distance matrix for the requested locations and returns
// the minimal-distance ordering. Validation failures map to 400, distance
// lookup failures to 502, infeasible matrices to 422.
func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if err := domain.ValidateLocations(req.Locations); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	matrix, err := h.Provider.FetchMatrix(r.Context(), req.Locations)
	if err != nil {
		log.Printf("fetch matrix failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "distance lookup failed")
		return
	}

	result, err := services.FindShortestRoute(matrix, req.Locations)
	if err != nil {
		if errors.Is(err, services.ErrNoFeasibleRoute) {
			writeError(w, r, http.StatusUnprocessableEntity, "no feasible route for the given locations")
			return
		}

		log.Printf("find shortest route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteResponse{
		Stops:               result.Stops(req.Locations),
		TotalDistanceMeters: result.TotalMeters,
		TotalDistanceKm:     result.TotalKilometers(),
	}

	writeJSON(w, r, http.StatusOK, res)
}
