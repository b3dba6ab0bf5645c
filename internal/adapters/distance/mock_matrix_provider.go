package distance

import (
	"context"
	"fmt"

	"routefinder/internal/domain"
)

// MockMatrixProvider serves a fixed matrix for tests and offline runs.
type MockMatrixProvider struct {
	Cells [][]float64
	Err   error
}

func NewMockMatrixProvider(cells [][]float64) *MockMatrixProvider {
	return &MockMatrixProvider{Cells: cells}
}

func (p *MockMatrixProvider) FetchMatrix(
	ctx context.Context,
	locations []string,
) (domain.DistanceMatrix, error) {
	if p.Err != nil {
		return domain.DistanceMatrix{}, p.Err
	}

	if len(p.Cells) != len(locations) {
		return domain.DistanceMatrix{}, fmt.Errorf(
			"mock matrix has %d rows for %d locations",
			len(p.Cells), len(locations),
		)
	}

	return domain.NewDistanceMatrix(p.Cells)
}
