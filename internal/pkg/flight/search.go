package flight

import "strings"

// FindFlights returns the catalog records whose route matches the given
// departure and arrival cities, compared case-insensitively. Catalog order
// is preserved. An empty result is a valid outcome, not an error.
func FindFlights(departure, arrival string) []Record {
	results := make([]Record, 0, len(catalog))

	for _, record := range catalog {
		if !strings.EqualFold(record.Departure, departure) {
			continue
		}

		if !strings.EqualFold(record.Arrival, arrival) {
			continue
		}

		results = append(results, record)
	}

	return results
}
