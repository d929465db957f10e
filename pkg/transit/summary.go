package transit

import (
	"sort"
)

// SummarizedRoute holds the next few departures for a unique line and direction.
type SummarizedRoute struct {
	LineName   string
	Direction  string
	Departures []Departure
}

// SummarizeDepartures sorts departures by time and groups them by line and
// direction, limiting the output to maxPerRoute departures per unique route.
// This prevents high-frequency routes from spamming the output out of order.
func SummarizeDepartures(deps []Departure, maxPerRoute int) []SummarizedRoute {
	// Filter out any invalid times just in case
	var valid []Departure
	for _, d := range deps {
		if !d.Stop.Departure.IsZero() {
			valid = append(valid, d)
		}
	}

	// Strictly sort all departures by effective departure time
	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Stop.Departure.Before(valid[j].Stop.Departure.Time)
	})

	// Group them
	routeMap := make(map[string]*SummarizedRoute)
	var routeKeys []string // to maintain order of first appearance (chronological now)

	for _, d := range valid {
		key := d.Name + "|" + d.To
		if _, exists := routeMap[key]; !exists {
			routeMap[key] = &SummarizedRoute{
				LineName:  d.Name,
				Direction: d.To,
			}
			routeKeys = append(routeKeys, key)
		}

		if len(routeMap[key].Departures) < maxPerRoute {
			routeMap[key].Departures = append(routeMap[key].Departures, d)
		}
	}

	var result []SummarizedRoute
	for _, key := range routeKeys {
		result = append(result, *routeMap[key])
	}

	return result
}
