package network

import (
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/spatial"
	"github.com/jengzang/flightnet-backend/internal/stats"
)

// Stats summarizes the flight network for the dashboard
type Stats struct {
	TotalAirports      int                   `json:"total_airports"`
	TotalConnections   int                   `json:"total_connections"` // Declared links, both directions counted
	UniqueConnections  int                   `json:"unique_connections"`
	TotalDistanceKm    float64               `json:"total_distance_km"`
	AverageConnections float64               `json:"average_connections"`
	MostConnected      *models.AirportDetail `json:"most_connected,omitempty"`
	LeastConnected     *models.AirportDetail `json:"least_connected,omitempty"`
	LinkDistance       stats.Summary         `json:"link_distance"`
	Center             spatial.Point         `json:"center"`
	Bounds             Bounds                `json:"bounds"`
	DroppedCodes       int                   `json:"dropped_codes"`
}

// Bounds is the bounding box of all airports, for fitting a map view
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Stats computes network statistics.
// Most and least connected airports are the first ones in dataset order
// holding the maximum and minimum out-degree.
func (n *FlightNetwork) Stats() Stats {
	s := Stats{
		TotalAirports:     len(n.Airports),
		TotalConnections:  len(n.Links),
		UniqueConnections: n.Graph.EdgeCount(),
		DroppedCodes:      len(n.Dropped),
	}

	distances := make([]float64, len(n.Links))
	for i, l := range n.Links {
		distances[i] = l.Distance
	}
	s.LinkDistance = stats.Summarize(distances)
	s.TotalDistanceKm = s.LinkDistance.Sum

	if len(n.Airports) == 0 {
		return s
	}

	s.AverageConnections = stats.Round(float64(s.TotalConnections*2)/float64(s.TotalAirports), 1)

	most, least := n.Airports[0], n.Airports[0]
	points := make([]spatial.Point, 0, len(n.Airports))
	for _, a := range n.Airports {
		if n.OutDegree[Code(a.IATA)] > n.OutDegree[Code(most.IATA)] {
			most = a
		}
		if n.OutDegree[Code(a.IATA)] < n.OutDegree[Code(least.IATA)] {
			least = a
		}
		points = append(points, spatial.Point{Lat: a.Lat, Lon: a.Lon})
	}
	s.MostConnected = &models.AirportDetail{Airport: most, OutDegree: n.OutDegree[Code(most.IATA)]}
	s.LeastConnected = &models.AirportDetail{Airport: least, OutDegree: n.OutDegree[Code(least.IATA)]}
	s.Center = spatial.Centroid(points)
	s.Bounds.MinLat, s.Bounds.MinLon, s.Bounds.MaxLat, s.Bounds.MaxLon = spatial.BoundingBox(points)

	return s
}
