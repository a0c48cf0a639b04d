package models

import "strings"

// FlightsSeparator joins destination IATA codes in Airport.Flights
const FlightsSeparator = ";"

// Airport represents one airport record of the static dataset
type Airport struct {
	IATA        string  `json:"iata" db:"iata"` // Primary key
	ICAO        string  `json:"icao" db:"icao"`
	Name        string  `json:"name" db:"name"`
	City        string  `json:"city" db:"city"`
	Lat         float64 `json:"lat" db:"lat"`
	Lon         float64 `json:"lon" db:"lon"`
	Type        string  `json:"type" db:"type"`                 // Free-text classification
	OpeningYear *int    `json:"opening_year" db:"opening_year"` // Nullable
	Flights     string  `json:"flights" db:"flights"`           // ";"-joined IATA codes reachable by direct flight
}

// Destinations splits the adjacency string into trimmed, non-empty codes.
// Codes are returned as written; validity is decided by the graph builder.
func (a Airport) Destinations() []string {
	if a.Flights == "" {
		return nil
	}

	parts := strings.Split(a.Flights, FlightsSeparator)
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		codes = append(codes, p)
	}
	return codes
}

// AirportDetail is an airport together with its network degree
type AirportDetail struct {
	Airport
	OutDegree int `json:"out_degree"`
}
