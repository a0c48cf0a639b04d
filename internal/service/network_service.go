package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
	"github.com/jengzang/flightnet-backend/internal/repository"
	"github.com/jengzang/flightnet-backend/internal/spatial"
	"github.com/jengzang/flightnet-backend/internal/stats"
)

// NetworkService owns the current flight network and rebuilds it on reload
type NetworkService struct {
	source repository.AirportSource

	mu       sync.RWMutex
	network  *network.FlightNetwork
	loadedAt time.Time
}

// NewNetworkService creates a network service with an empty network.
// Call Reload before serving.
func NewNetworkService(source repository.AirportSource) *NetworkService {
	return &NetworkService{
		source:  source,
		network: network.Build(nil),
	}
}

// Reload reads the airport dataset and swaps in a freshly built network
func (s *NetworkService) Reload(ctx context.Context) error {
	airports, err := s.source.ListAirports(ctx)
	if err != nil {
		return fmt.Errorf("failed to load airports: %w", err)
	}

	n := network.Build(airports)
	for _, d := range n.Dropped {
		log.Printf("Warning: airport %s lists unknown destination %q", d.Source, d.Target)
	}

	s.mu.Lock()
	s.network = n
	s.loadedAt = time.Now()
	s.mu.Unlock()

	log.Printf("Flight network built: %d airports, %d links, %d dropped codes",
		n.Graph.Len(), len(n.Links), len(n.Dropped))
	return nil
}

// Network returns the current network. It is never nil and must not be modified.
func (s *NetworkService) Network() *network.FlightNetwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network
}

// LoadedAt returns when the network was last rebuilt
func (s *NetworkService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Airports lists all airports in dataset order
func (s *NetworkService) Airports() []models.Airport {
	return s.Network().Airports
}

// Airport looks up one airport with its out-degree
func (s *NetworkService) Airport(iata string) (*models.AirportDetail, error) {
	n := s.Network()
	code := normalizeCode(iata)
	a, ok := n.Airport(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAirportNotFound, code)
	}
	return &models.AirportDetail{Airport: a, OutDegree: n.OutDegree[code]}, nil
}

// Stats computes statistics of the current network
func (s *NetworkService) Stats() network.Stats {
	return s.Network().Stats()
}

// ShortestRoute finds the shortest route between two airports and
// describes each leg for drawing
func (s *NetworkService) ShortestRoute(from, to string) (*models.RouteSummary, error) {
	src, dst := normalizeCode(from), normalizeCode(to)
	if src == dst {
		return nil, ErrSameAirport
	}

	n := s.Network()
	for _, c := range []network.Code{src, dst} {
		if !n.Graph.HasNode(c) {
			return nil, fmt.Errorf("%w: %s", ErrAirportNotFound, c)
		}
	}

	path := n.FindRoute(src, dst)
	if path == nil {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoRoute, src, dst)
	}

	total, err := network.TotalDistance(path, n.Graph)
	if err != nil {
		return nil, err
	}

	summary := &models.RouteSummary{
		Path:       make([]string, len(path)),
		DistanceKm: stats.Round(total, 1),
		Hops:       len(path) - 1,
		Transfers:  []string{},
		IsDirect:   len(path) == 2,
		Legs:       make([]models.RouteLeg, 0, len(path)-1),
	}
	for i, c := range path {
		summary.Path[i] = string(c)
		if i > 0 && i < len(path)-1 {
			summary.Transfers = append(summary.Transfers, string(c))
		}
	}
	for i := 1; i < len(path); i++ {
		a, b := n.Coordinates[path[i-1]], n.Coordinates[path[i]]
		d, _ := n.Graph.Weight(path[i-1], path[i])
		summary.Legs = append(summary.Legs, models.RouteLeg{
			From:       string(path[i-1]),
			To:         string(path[i]),
			FromCity:   a.City,
			ToCity:     b.City,
			DistanceKm: stats.Round(d, 1),
			Bearing:    stats.Round(spatial.Bearing(a.Lat, a.Lon, b.Lat, b.Lon), 1),
			Midpoint:   spatial.Midpoint(a.Lat, a.Lon, b.Lat, b.Lon),
		})
	}

	return summary, nil
}

func normalizeCode(s string) network.Code {
	return network.Code(strings.ToUpper(strings.TrimSpace(s)))
}
