// Package optimizer picks distinguished offers out of a flight search result
// and prunes the route graph down to the airports those offers touch.
package optimizer

import (
	"time"

	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
)

// Balanced score weights. Lower scores are better.
const (
	priceWeight    = 0.6
	durationWeight = 0.4
)

// Strategy names
const (
	StrategyCheapest = "cheapest"
	StrategyFastest  = "fastest"
	StrategyEarliest = "earliest"
	StrategyBalanced = "balanced"
)

// Params are the search inputs the optimizer needs
type Params struct {
	Origin      network.Code
	Destination network.Code
	ArrivalTime string // "HH:MM"; empty disables the arrival filter
}

// Routes holds the selected offer per strategy; nil when nothing qualifies
type Routes struct {
	Cheapest *models.FlightOffer `json:"cheapest"`
	Fastest  *models.FlightOffer `json:"fastest"`
	Earliest *models.FlightOffer `json:"earliest"`
	Balanced *models.FlightOffer `json:"balanced"`
}

// Result is the outcome of one optimization call
type Result struct {
	Routes            Routes         `json:"routes"`
	PrunedGraph       *network.Graph `json:"pruned_graph"`
	FilteredCount     int            `json:"filtered_count"`
	CabinClassWarning string         `json:"cabin_class_warning,omitempty"`
	Message           string         `json:"message,omitempty"`
}

// Optimizer selects offers against one flight network
type Optimizer struct {
	network *network.FlightNetwork
}

// New creates an optimizer bound to a built network
func New(n *network.FlightNetwork) *Optimizer {
	return &Optimizer{network: n}
}

// Optimize filters the offers by arrival time, selects the cheapest,
// fastest, earliest-arriving and balanced offers, and prunes the graph.
//
// A cabin class warning on the search result short-circuits everything:
// the warning and message are passed through and no routes are computed.
// All selections break ties in favour of the earlier offer.
func (o *Optimizer) Optimize(search models.SearchResult, p Params) Result {
	if search.CabinClassWarning != "" {
		return Result{
			PrunedGraph:       network.NewGraph(),
			CabinClassWarning: search.CabinClassWarning,
			Message:           search.Message,
		}
	}

	filtered := FilterByArrival(search.Offers, p.ArrivalTime)

	return Result{
		Routes: Routes{
			Cheapest: Cheapest(filtered),
			Fastest:  Fastest(filtered),
			Earliest: Earliest(filtered),
			Balanced: Balanced(filtered),
		},
		PrunedGraph:   o.prune(filtered, p),
		FilteredCount: len(filtered),
	}
}

// FilterByArrival keeps offers whose outbound itinerary lands no later than
// the "HH:MM" limit on the wall clock of the arrival timestamp. An empty or
// unparseable limit keeps every offer. Offers without a readable arrival are
// dropped when a limit is set.
func FilterByArrival(offers []models.FlightOffer, arrivalTime string) []models.FlightOffer {
	if arrivalTime == "" {
		return offers
	}
	targetHour, targetMinute, ok := parseClock(arrivalTime)
	if !ok {
		return offers
	}

	out := make([]models.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		at, ok := arrivalOf(offer)
		if !ok {
			continue
		}
		h, m := at.Hour(), at.Minute()
		if h < targetHour || (h == targetHour && m <= targetMinute) {
			out = append(out, offer)
		}
	}
	return out
}

// Cheapest returns the offer with the lowest price
func Cheapest(offers []models.FlightOffer) *models.FlightOffer {
	var best *models.FlightOffer
	for i := range offers {
		if best == nil || offers[i].Price < best.Price {
			best = &offers[i]
		}
	}
	return clone(best)
}

// Fastest returns the offer whose outbound itinerary is shortest
func Fastest(offers []models.FlightOffer) *models.FlightOffer {
	var best *models.FlightOffer
	bestMinutes := 0
	for i := range offers {
		d, ok := durationOf(offers[i])
		if !ok {
			continue
		}
		if best == nil || d < bestMinutes {
			best, bestMinutes = &offers[i], d
		}
	}
	return clone(best)
}

// Earliest returns the offer whose outbound itinerary lands first
func Earliest(offers []models.FlightOffer) *models.FlightOffer {
	var best *models.FlightOffer
	var bestAt time.Time
	for i := range offers {
		at, ok := arrivalOf(offers[i])
		if !ok {
			continue
		}
		if best == nil || at.Before(bestAt) {
			best, bestAt = &offers[i], at
		}
	}
	return clone(best)
}

// Balanced returns the offer minimizing
//
//	0.6 * price/maxPrice + 0.4 * duration/maxDuration
//
// where the maxima are taken over the candidate offers.
func Balanced(offers []models.FlightOffer) *models.FlightOffer {
	var maxPrice float64
	maxDuration := 0
	for _, offer := range offers {
		d, ok := durationOf(offer)
		if !ok {
			continue
		}
		if offer.Price > maxPrice {
			maxPrice = offer.Price
		}
		if d > maxDuration {
			maxDuration = d
		}
	}

	var best *models.FlightOffer
	bestScore := 0.0
	for i := range offers {
		d, ok := durationOf(offers[i])
		if !ok {
			continue
		}
		score := BalancedScore(offers[i].Price, d, maxPrice, maxDuration)
		if best == nil || score < bestScore {
			best, bestScore = &offers[i], score
		}
	}
	return clone(best)
}

// BalancedScore is the weighted sum of price and duration normalized by
// their maxima. A zero maximum normalizes to zero.
func BalancedScore(price float64, minutes int, maxPrice float64, maxMinutes int) float64 {
	var priceNorm, durationNorm float64
	if maxPrice > 0 {
		priceNorm = price / maxPrice
	}
	if maxMinutes > 0 {
		durationNorm = float64(minutes) / float64(maxMinutes)
	}
	return priceWeight*priceNorm + durationWeight*durationNorm
}

// prune keeps the airports used by any segment of any offer plus the
// search endpoints. With no offers left the pruned graph is empty.
func (o *Optimizer) prune(offers []models.FlightOffer, p Params) *network.Graph {
	if len(offers) == 0 || o.network == nil {
		return network.NewGraph()
	}

	keep := make([]network.Code, 0, 2*len(offers)+2)
	for _, offer := range offers {
		for _, it := range offer.Itineraries {
			for _, seg := range it.Segments {
				keep = append(keep, network.Code(seg.Departure.Airport), network.Code(seg.Arrival.Airport))
			}
		}
	}
	keep = append(keep, p.Origin, p.Destination)

	return network.Prune(o.network.Graph, keep)
}

func durationOf(offer models.FlightOffer) (int, bool) {
	it, ok := offer.FirstItinerary()
	if !ok {
		return 0, false
	}
	return ParseDuration(it.Duration), true
}

func arrivalOf(offer models.FlightOffer) (time.Time, bool) {
	it, ok := offer.FirstItinerary()
	if !ok {
		return time.Time{}, false
	}
	last, ok := it.LastSegment()
	if !ok {
		return time.Time{}, false
	}
	at, err := last.Arrival.At()
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// clone detaches the selection from the caller's slice.
func clone(o *models.FlightOffer) *models.FlightOffer {
	if o == nil {
		return nil
	}
	cp := *o
	return &cp
}
