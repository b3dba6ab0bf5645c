package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"routefinder/internal/adapters/distance"
	"routefinder/internal/api/dto"
)

func postRoutes(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Optimize(rec, req)
	return rec
}

func TestOptimizeReturnsShortestRoute(t *testing.T) {
	provider := distance.NewMockMatrixProvider([][]float64{
		{0, 10, 15},
		{10, 0, 20},
		{15, 20, 0},
	})
	h := &RouteHandler{Provider: provider}

	rec := postRoutes(t, h, `{"locations":["A","B","C"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Stops) != 3 || res.Stops[0] != "A" || res.Stops[1] != "B" || res.Stops[2] != "C" {
		t.Fatalf("stops = %v, want [A B C]", res.Stops)
	}
	if res.TotalDistanceMeters != 30 {
		t.Fatalf("meters = %v, want 30", res.TotalDistanceMeters)
	}
	if res.TotalDistanceKm != 0.03 {
		t.Fatalf("km = %v, want 0.03", res.TotalDistanceKm)
	}
}

func TestOptimizeRejectsTooFewLocations(t *testing.T) {
	h := &RouteHandler{Provider: distance.NewMockMatrixProvider(nil)}

	rec := postRoutes(t, h, `{"locations":["A"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeRejectsInvalidBody(t *testing.T) {
	h := &RouteHandler{Provider: distance.NewMockMatrixProvider(nil)}

	rec := postRoutes(t, h, `{"locations":["A","B"],"extra":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for unknown field", rec.Code)
	}
}

func TestOptimizeProviderFailureMapsToBadGateway(t *testing.T) {
	provider := distance.NewMockMatrixProvider(nil)
	provider.Err = errors.New("upstream unavailable")
	h := &RouteHandler{Provider: provider}

	rec := postRoutes(t, h, `{"locations":["A","B"]}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestOptimizeInfeasibleMatrix(t *testing.T) {
	inf := math.Inf(1)
	provider := distance.NewMockMatrixProvider([][]float64{
		{0, inf},
		{inf, 0},
	})
	h := &RouteHandler{Provider: provider}

	rec := postRoutes(t, h, `{"locations":["A","B"]}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestOptimizeMethodNotAllowed(t *testing.T) {
	h := &RouteHandler{Provider: distance.NewMockMatrixProvider(nil)}

	req := httptest.NewRequest(http.MethodGet, "/routes", nil)
	rec := httptest.NewRecorder()
	h.Optimize(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
