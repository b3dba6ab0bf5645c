package domain

// Route is one ordering (permutation) of all locations in a request,
// representing an open path that visits each exactly once. No return leg to
// the start is implied.
type Route struct {
	// Order holds location indices into the request's location list; each
	// index in [0, n) appears exactly once.
	Order []int
}

// RouteResult is the winning Route plus its total open-path distance.
// It is immutable planning data and contains no side effects.
type RouteResult struct {
	Route Route

	// TotalMeters is the sum of consecutive-pair distances along the route.
	TotalMeters float64
}

// Stops maps the route's index order back to location names.
func (r RouteResult) Stops(locations []string) []string {
	stops := make([]string, 0, len(r.Route.Order))
	for _, idx := range r.Route.Order {
		stops = append(stops, locations[idx])
	}
	return stops
}

// TotalKilometers converts the winning distance from meters to kilometers.
func (r RouteResult) TotalKilometers() float64 { return r.TotalMeters / 1000.0 }
