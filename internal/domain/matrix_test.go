package domain

import (
	"errors"
	"testing"
)

func TestValidateLocations(t *testing.T) {
	if err := ValidateLocations([]string{"A", "B"}); err != nil {
		t.Fatalf("two locations should be valid, got %v", err)
	}

	if err := ValidateLocations([]string{"A"}); !errors.Is(err, ErrTooFewLocations) {
		t.Fatalf("err = %v, want ErrTooFewLocations", err)
	}

	eleven := make([]string, MaxLocations+1)
	for i := range eleven {
		eleven[i] = "somewhere"
	}
	if err := ValidateLocations(eleven); !errors.Is(err, ErrTooManyLocations) {
		t.Fatalf("err = %v, want ErrTooManyLocations", err)
	}

	if err := ValidateLocations([]string{"A", "   "}); err == nil {
		t.Fatal("expected error for blank location entry")
	}
}

func TestNewDistanceMatrixRejectsRaggedRows(t *testing.T) {
	_, err := NewDistanceMatrix([][]float64{
		{0, 1},
		{1},
	})
	if err == nil {
		t.Fatal("expected error for non-square cells")
	}
}

func TestRouteResultStops(t *testing.T) {
	result := RouteResult{
		Route:       Route{Order: []int{2, 0, 1}},
		TotalMeters: 1234,
	}

	stops := result.Stops([]string{"A", "B", "C"})
	if len(stops) != 3 || stops[0] != "C" || stops[1] != "A" || stops[2] != "B" {
		t.Fatalf("stops = %v, want [C A B]", stops)
	}

	if km := result.TotalKilometers(); km != 1.234 {
		t.Fatalf("km = %v, want 1.234", km)
	}
}
