package services

import (
	"errors"
	"fmt"
	"math"
	"routefinder/internal/domain"
)

// ErrNoFeasibleRoute is returned when no permutation of the locations has a
// finite total distance. It is distinct from input-validation failures: the
// request was well formed, but the matrix offers no traversable path.
var ErrNoFeasibleRoute = errors.New("no feasible route: every ordering has a non-finite total distance")

// FindShortestRoute finds the ordering of all locations that minimizes total
// open-path distance, by exhaustively enumerating every permutation of the
// location indices. The result is the true global minimum, not a heuristic.
//
// Enumeration is deterministic: each index is fixed as the first element in
// ascending order, then the remainder is permuted recursively. The best route
// is replaced on strict improvement only, so when two orderings tie exactly,
// the first one enumerated wins. Callers can rely on that for reproducible
// output.
//
// Cost grows as O(n!); this is tractable only because requests are capped at
// domain.MaxLocations entries. There is no heuristic fallback for larger n —
// oversized inputs are rejected upstream, not degraded.
func FindShortestRoute(matrix domain.DistanceMatrix, locations []string) (domain.RouteResult, error) {
	if err := domain.ValidateLocations(locations); err != nil {
		return domain.RouteResult{}, fmt.Errorf("find shortest route: %w", err)
	}

	n := matrix.Size()
	if n != len(locations) {
		return domain.RouteResult{}, fmt.Errorf(
			"find shortest route: matrix size %d does not match %d locations",
			n, len(locations),
		)
	}

	var bestOrder []int
	bestTotal := math.Inf(1)

	order := make([]int, 0, n)
	used := make([]bool, n)

	// Depth-first permutation walk. Candidate indices are tried in ascending
	// order at every depth, which yields the documented enumeration order.
	var walk func()
	walk = func() {
		if len(order) == n {
			total := routeTotal(matrix, order)
			// Strict improvement keeps the first-enumerated ordering on ties;
			// non-finite totals are never selected.
			if total < bestTotal {
				bestTotal = total
				bestOrder = append(bestOrder[:0:0], order...)
			}
			return
		}

		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			order = append(order, i)
			walk()
			order = order[:len(order)-1]
			used[i] = false
		}
	}
	walk()

	if bestOrder == nil || math.IsInf(bestTotal, 1) {
		return domain.RouteResult{}, fmt.Errorf("find shortest route: %w", ErrNoFeasibleRoute)
	}

	return domain.RouteResult{
		Route:       domain.Route{Order: bestOrder},
		TotalMeters: bestTotal,
	}, nil
}

// routeTotal sums the consecutive-pair distances along an ordering. The path
// is open: no return leg from the last stop back to the first is added.
// A NaN anywhere on the path poisons the total to +Inf so the ordering can
// never be selected as best.
func routeTotal(matrix domain.DistanceMatrix, order []int) float64 {
	total := 0.0
	for i := 0; i < len(order)-1; i++ {
		leg := matrix.At(order[i], order[i+1])
		if math.IsNaN(leg) {
			return math.Inf(1)
		}
		total += leg
	}
	return total
}
