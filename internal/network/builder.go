package network

import (
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/spatial"
)

// Coordinate is the map position and labels of an airport
type Coordinate struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	City string  `json:"city"`
	Name string  `json:"name"`
}

// Link is one declared direct connection, used for drawing.
// The same connection may appear twice when both airports declare it.
type Link struct {
	Source     Code    `json:"source"`
	Target     Code    `json:"target"`
	SourceCity string  `json:"source_city"`
	TargetCity string  `json:"target_city"`
	Distance   float64 `json:"distance"` // Kilometers
}

// DroppedCode is an adjacency entry that names an airport missing from the dataset
type DroppedCode struct {
	Source Code   `json:"source"`
	Target string `json:"target"`
}

// FlightNetwork is the immutable result of building the route graph
// from one airport dataset. Rebuild it when the dataset changes.
type FlightNetwork struct {
	Airports    []models.Airport    `json:"-"`
	Coordinates map[Code]Coordinate `json:"coordinates"`
	Graph       *Graph              `json:"graph"`
	Links       []Link              `json:"links"`
	OutDegree   map[Code]int        `json:"out_degree"`
	Dropped     []DroppedCode       `json:"dropped,omitempty"`

	airportIndex map[Code]int
}

// Build constructs the flight network from airport records.
//
// Every airport becomes a node, including airports without direct flights.
// Adjacency entries naming unknown airports are skipped and reported in
// Dropped rather than treated as errors, since the dataset is hand-maintained.
func Build(airports []models.Airport) *FlightNetwork {
	n := &FlightNetwork{
		Airports:     airports,
		Coordinates:  make(map[Code]Coordinate, len(airports)),
		Graph:        NewGraph(),
		OutDegree:    make(map[Code]int, len(airports)),
		airportIndex: make(map[Code]int, len(airports)),
	}

	for i, a := range airports {
		code := Code(a.IATA)
		n.Coordinates[code] = Coordinate{Lat: a.Lat, Lon: a.Lon, City: a.City, Name: a.Name}
		n.airportIndex[code] = i
		n.Graph.AddNode(code)
	}

	for _, src := range airports {
		source := Code(src.IATA)
		degree := 0
		for _, dest := range src.Destinations() {
			target := Code(dest)
			to, ok := n.Coordinates[target]
			if !ok {
				n.Dropped = append(n.Dropped, DroppedCode{Source: source, Target: dest})
				continue
			}

			d := spatial.HaversineKm(src.Lat, src.Lon, to.Lat, to.Lon)
			n.Links = append(n.Links, Link{
				Source:     source,
				Target:     target,
				SourceCity: src.City,
				TargetCity: to.City,
				Distance:   d,
			})
			// Haversine distances are never negative, so SetEdge cannot fail here.
			_ = n.Graph.SetEdge(source, target, d)
			degree++
		}
		n.OutDegree[source] = degree
	}

	return n
}

// Airport looks up an airport record by code
func (n *FlightNetwork) Airport(c Code) (models.Airport, bool) {
	i, ok := n.airportIndex[c]
	if !ok {
		return models.Airport{}, false
	}
	return n.Airports[i], true
}

// FindRoute returns the shortest path between two airports, or nil
func (n *FlightNetwork) FindRoute(from, to Code) []Code {
	return ShortestPath(n.Graph, from, to)
}
