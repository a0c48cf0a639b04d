package provider

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
)

const (
	timeLayout  = "2006-01-02T15:04:05"
	layover     = 90 // Minutes between connecting segments
	cruiseSpeed = 12 // Kilometers per minute
	taxiMinutes = 30
)

// hubs are tried as transfer points, each flown by its home carrier
var hubs = []struct {
	code    network.Code
	carrier string
}{
	{"IST", "TK"},
	{"SAW", "PC"},
	{"ESB", "AJ"},
}

// Mock generates deterministic offers from the route network.
// Prices and durations are derived from great-circle distance.
type Mock struct {
	network  func() *network.FlightNetwork
	currency string
	cabins   map[string]bool
	newID    func() string
}

// NewMock creates a mock provider that only sells the given cabins.
// With no cabins it sells economy only. The network is fetched on every
// search so reloads are picked up.
func NewMock(n func() *network.FlightNetwork, currency string, cabins ...string) *Mock {
	if len(cabins) == 0 {
		cabins = []string{models.CabinEconomy}
	}
	m := &Mock{
		network:  n,
		currency: currency,
		cabins:   make(map[string]bool, len(cabins)),
		newID:    uuid.NewString,
	}
	for _, c := range cabins {
		m.cabins[c] = true
	}
	return m
}

// Search returns a direct offer per carrier when the airports are
// adjacent, plus one-stop offers through each hub connecting both ends
// and through the shortest route when it has exactly one transfer.
func (m *Mock) Search(ctx context.Context, p models.SearchParams) ([]models.FlightOffer, error) {
	day, err := departureDate(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	from, to := network.Code(p.Origin), network.Code(p.Destination)
	g := m.network().Graph
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, from)
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, to)
	}
	if from == to || !m.cabins[cabinOf(p)] {
		return []models.FlightOffer{}, nil
	}

	offers := []models.FlightOffer{}

	if km, ok := g.Weight(from, to); ok {
		base := basePrice(km)
		offers = append(offers,
			m.offer(base, m.leg(day, 8*60, from, to, km, "TK")),
			m.offer(math.Round(base*0.85), m.leg(day, 17*60, from, to, km, "PC")),
		)
	}

	seen := make(map[network.Code]bool, len(hubs)+1)
	for _, h := range hubs {
		if h.code == from || h.code == to {
			continue
		}
		if o, ok := m.transfer(g, day, from, h.code, to, h.carrier); ok {
			offers = append(offers, o)
			seen[h.code] = true
		}
	}

	if path := network.ShortestPath(g, from, to); len(path) == 3 && !seen[path[1]] {
		if o, ok := m.transfer(g, day, from, path[1], to, "XQ"); ok {
			offers = append(offers, o)
		}
	}

	return offers, nil
}

func (m *Mock) transfer(g *network.Graph, day time.Time, from, via, to network.Code, carrier string) (models.FlightOffer, bool) {
	km1, ok := g.Weight(from, via)
	if !ok {
		return models.FlightOffer{}, false
	}
	km2, ok := g.Weight(via, to)
	if !ok {
		return models.FlightOffer{}, false
	}

	first := m.leg(day, 6*60, from, via, km1, carrier)
	arrived := 6*60 + flightMinutes(km1)
	second := m.leg(day, arrived+layover, via, to, km2, carrier)

	price := math.Round(0.6 * (basePrice(km1) + basePrice(km2)))
	return m.offer(price, first, second), true
}

func (m *Mock) leg(day time.Time, depart int, from, to network.Code, km float64, carrier string) models.Segment {
	minutes := flightMinutes(km)
	dep := day.Add(time.Duration(depart) * time.Minute)
	arr := dep.Add(time.Duration(minutes) * time.Minute)
	return models.Segment{
		Departure:    models.Endpoint{Airport: string(from), Time: dep.Format(timeLayout)},
		Arrival:      models.Endpoint{Airport: string(to), Time: arr.Format(timeLayout)},
		Carrier:      carrier,
		FlightNumber: fmt.Sprintf("%s%d", carrier, 1000+int(km)%9000),
		Duration:     FormatDuration(minutes),
		Airline:      AirlineName(carrier),
	}
}

func (m *Mock) offer(price float64, segs ...models.Segment) models.FlightOffer {
	first, _ := segs[0].Departure.At()
	last, _ := segs[len(segs)-1].Arrival.At()
	total := int(last.Sub(first) / time.Minute)

	return models.FlightOffer{
		ID:          m.newID(),
		Price:       price,
		Currency:    m.currency,
		Itineraries: []models.Itinerary{models.NewItinerary(FormatDuration(total), segs)},
	}
}

func basePrice(km float64) float64 {
	return math.Round(400 + 1.8*km)
}

func flightMinutes(km float64) int {
	return taxiMinutes + int(math.Round(km/cruiseSpeed))
}
