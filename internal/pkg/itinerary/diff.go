package itinerary

import (
	"maps"
	"slices"
)

// RouteFlights maps an onward route string to the onward flights travelling it.
type RouteFlights map[string][]Flight

// Routes returns the route keys in sorted order.
func (r RouteFlights) Routes() []string {
	return slices.Sorted(maps.Keys(r))
}

// Count returns the number of flights over all routes.
func (r RouteFlights) Count() int {
	count := 0
	for _, flights := range r {
		count += len(flights)
	}

	return count
}

// GroupFlightsByRoute collects the onward flights of itineraries under their onward route.
// Flights of itineraries sharing a route are concatenated in document order.
// Itineraries without onward flights have no route and are skipped.
func GroupFlightsByRoute(itineraries []Itinerary) RouteFlights {
	result := make(RouteFlights)
	for _, it := range itineraries {
		route := it.OnwardRoute()
		if route == "" {
			continue
		}

		result[route] = append(result[route], it.OnwardFlights...)
	}

	return result
}

// DiffFlights returns, for every route known to both baseline and candidate, the candidate
// flights that have no SameFlight match in the baseline for that route.
// Routes only present in the candidate are not reported; use DiffRoutes for those.
func DiffFlights(baseline, candidate RouteFlights) RouteFlights {
	result := make(RouteFlights)
	for route, flights := range candidate {
		baselineFlights, ok := baseline[route]
		if !ok {
			continue
		}

		for _, flight := range flights {
			if !ContainsFlight(baselineFlights, flight) {
				result[route] = append(result[route], flight)
			}
		}
	}

	return result
}

// DiffRoutes returns the candidate itineraries whose onward route matches no baseline
// itinerary, in candidate order.
func DiffRoutes(baseline, candidate []Itinerary) []Itinerary {
	result := make([]Itinerary, 0)
	for _, it := range candidate {
		found := false
		for _, base := range baseline {
			if SameRoute(it, base) {
				found = true
				break
			}
		}

		if !found {
			result = append(result, it)
		}
	}

	return result
}

// CountRoutes counts itineraries per Route key.
func CountRoutes(itineraries []Itinerary) map[string]int {
	counts := make(map[string]int, len(itineraries))
	for _, it := range itineraries {
		counts[it.Route()]++
	}

	return counts
}

// FindByRoute returns the first itinerary whose Route key equals route.
func FindByRoute(itineraries []Itinerary, route string) (Itinerary, bool) {
	for _, it := range itineraries {
		if it.Route() == route {
			return it, true
		}
	}

	return Itinerary{}, false
}
