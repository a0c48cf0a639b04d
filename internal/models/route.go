package models

import "github.com/jengzang/flightnet-backend/internal/spatial"

// RouteLeg is one direct hop of a route
type RouteLeg struct {
	From       string        `json:"from"`
	To         string        `json:"to"`
	FromCity   string        `json:"from_city"`
	ToCity     string        `json:"to_city"`
	DistanceKm float64       `json:"distance_km"`
	Bearing    float64       `json:"bearing"`  // Degrees, 0 = North
	Midpoint   spatial.Point `json:"midpoint"` // Great-circle midpoint for drawing arcs
}

// RouteSummary is the answer to a shortest-route query
type RouteSummary struct {
	Path       []string   `json:"path"`
	DistanceKm float64    `json:"distance_km"`
	Hops       int        `json:"hops"`
	Transfers  []string   `json:"transfers"` // Interior airports
	IsDirect   bool       `json:"is_direct"`
	Legs       []RouteLeg `json:"legs"`
}
