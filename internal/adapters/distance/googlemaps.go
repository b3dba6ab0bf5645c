package distance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"routefinder/internal/domain"
	"routefinder/internal/platform/obs"

	"googlemaps.github.io/maps"
)

// GoogleMapsProvider implements MatrixProvider using the Google Maps
// Distance Matrix API.
//
// The full location list is sent as both the origin set and the destination
// set in a single driving-mode request; the API preserves input ordering, so
// response row i / element j corresponds to locations[i] -> locations[j].
//
// One outbound call per FetchMatrix, no retries: transient network failures
// propagate to the caller. The provider is safe for concurrent use.
type GoogleMapsProvider struct {
	client *maps.Client
}

// NewGoogleMapsProvider builds a provider from an API key. Extra client
// options are forwarded to the underlying client (tests use this to point at
// a stub server).
func NewGoogleMapsProvider(apiKey string, opts ...maps.ClientOption) (*GoogleMapsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	clientOpts := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)
	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("new google maps client: %w", err)
	}

	return &GoogleMapsProvider{client: client}, nil
}

// normalize ensures consistent request values by collapsing whitespace.
func (g *GoogleMapsProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FetchMatrix resolves the ordered location list into a dense n x n matrix of
// driving distances in meters. A response with missing rows, missing
// elements, or a non-OK element status is a hard failure; no cell is ever
// patched with zero or infinity.
func (g *GoogleMapsProvider) FetchMatrix(
	ctx context.Context,
	locations []string,
) (_ domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "googlemaps.FetchMatrix")(&err)

	if err := domain.ValidateLocations(locations); err != nil {
		return domain.DistanceMatrix{}, fmt.Errorf("fetch matrix: %w", err)
	}

	n := len(locations)
	normalized := make([]string, 0, n)
	for _, loc := range locations {
		normalized = append(normalized, g.normalize(loc))
	}

	resp, err := g.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      normalized,
		Destinations: normalized,
		Mode:         maps.TravelModeDriving,
	})
	if err != nil {
		return domain.DistanceMatrix{}, fmt.Errorf("fetch matrix: distance matrix request: %w", err)
	}

	if len(resp.Rows) != n {
		return domain.DistanceMatrix{}, fmt.Errorf(
			"fetch matrix: response has %d rows, want %d",
			len(resp.Rows), n,
		)
	}

	cells := make([][]float64, 0, n)
	for i, row := range resp.Rows {
		if len(row.Elements) != n {
			return domain.DistanceMatrix{}, fmt.Errorf(
				"fetch matrix: row %d has %d elements, want %d",
				i, len(row.Elements), n,
			)
		}

		rowCells := make([]float64, 0, n)
		for j, el := range row.Elements {
			if el == nil {
				return domain.DistanceMatrix{}, fmt.Errorf(
					"fetch matrix: missing element for %q to %q",
					locations[i], locations[j],
				)
			}

			if el.Status != "OK" {
				return domain.DistanceMatrix{}, fmt.Errorf(
					"fetch matrix: no route from %q to %q (status %q)",
					locations[i], locations[j], el.Status,
				)
			}

			meters := float64(el.Distance.Meters)
			if meters < 0 {
				return domain.DistanceMatrix{}, fmt.Errorf(
					"fetch matrix: negative distance %d from %q to %q",
					el.Distance.Meters, locations[i], locations[j],
				)
			}
			rowCells = append(rowCells, meters)
		}
		cells = append(cells, rowCells)
	}

	matrix, err := domain.NewDistanceMatrix(cells)
	if err != nil {
		return domain.DistanceMatrix{}, fmt.Errorf("fetch matrix: %w", err)
	}

	return matrix, nil
}
