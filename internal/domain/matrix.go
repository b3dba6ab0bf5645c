package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Location-count bounds for an optimization request. Fewer than 2 locations
// makes ordering meaningless; more than 10 pushes the exhaustive search
// (10! orderings) past interactive latency.
const (
	MinLocations = 2
	MaxLocations = 10
)

var (
	ErrTooFewLocations  = errors.New("at least 2 locations are required")
	ErrTooManyLocations = errors.New("at most 10 locations are supported")
)

// ValidateLocations checks the location list against the request bounds.
// Entries must be non-empty after trimming; duplicates are permitted and
// simply produce zero-distance legs.
func ValidateLocations(locations []string) error {
	if len(locations) < MinLocations {
		return fmt.Errorf("validate locations: got %d: %w", len(locations), ErrTooFewLocations)
	}

	if len(locations) > MaxLocations {
		return fmt.Errorf("validate locations: got %d: %w", len(locations), ErrTooManyLocations)
	}

	for i, loc := range locations {
		if strings.TrimSpace(loc) == "" {
			return fmt.Errorf("validate locations: location %d is empty", i+1)
		}
	}

	return nil
}

// DistanceMatrix holds directed pairwise driving distances in meters for an
// ordered set of locations: Cells[i][j] is the distance from location i to
// location j. Values may be asymmetric and are never averaged. The matrix is
// built fresh per request and not mutated afterwards.
type DistanceMatrix struct {
	Cells [][]float64
}

func NewDistanceMatrix(cells [][]float64) (DistanceMatrix, error) {
	n := len(cells)
	for i, row := range cells {
		if len(row) != n {
			return DistanceMatrix{}, fmt.Errorf(
				"new distance matrix: row %d has %d cells, want %d",
				i, len(row), n,
			)
		}
	}

	return DistanceMatrix{Cells: cells}, nil
}

func (m DistanceMatrix) Size() int { return len(m.Cells) }

// At returns the directed distance in meters from location i to location j.
// Indices are the caller's responsibility; this mirrors slice indexing.
func (m DistanceMatrix) At(i, j int) float64 { return m.Cells[i][j] }
