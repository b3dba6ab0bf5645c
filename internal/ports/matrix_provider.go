package ports

import (
	"context"
	"routefinder/internal/domain"
)

// Contract for resolving an ordered location list into a dense pairwise
// distance matrix. Row i, column j of the result is the directed driving
// distance from locations[i] to locations[j].
type MatrixProvider interface {
	// FetchMatrix performs the lookup for all location pairs in one call.
	// Implementations must return a complete matrix or an error; missing
	// cells are never silently substituted with zero or infinity.
	FetchMatrix(ctx context.Context, locations []string) (domain.DistanceMatrix, error)
}
