package optimizer

import (
	"time"

	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
)

// FormattedRoute is the display view of a selected offer
type FormattedRoute struct {
	Offer    models.FlightOffer `json:"offer"`
	Summary  RouteSummary       `json:"summary"`
	Path     []network.Code     `json:"path"`
	Segments []models.Segment   `json:"segments"`
}

// RouteSummary holds the headline numbers of a formatted route
type RouteSummary struct {
	Price           float64    `json:"price"`
	Currency        string     `json:"currency"`
	DurationMinutes int        `json:"duration_minutes"`
	TransferCount   int        `json:"transfer_count"`
	ArrivalTime     *time.Time `json:"arrival_time,omitempty"`
	IsDirect        bool       `json:"is_direct"`
}

// FormattedRoutes is Routes rendered for display
type FormattedRoutes struct {
	Cheapest *FormattedRoute `json:"cheapest"`
	Fastest  *FormattedRoute `json:"fastest"`
	Earliest *FormattedRoute `json:"earliest"`
	Balanced *FormattedRoute `json:"balanced"`
}

// FormatRoute builds the display view of an offer's outbound itinerary.
// The path lists every segment's departure airport followed by the final
// arrival airport. A nil offer formats to nil.
func FormatRoute(offer *models.FlightOffer) *FormattedRoute {
	if offer == nil {
		return nil
	}

	fr := &FormattedRoute{
		Offer: *offer,
		Summary: RouteSummary{
			Price:    offer.Price,
			Currency: offer.Currency,
		},
	}

	it, ok := offer.FirstItinerary()
	if !ok {
		return fr
	}

	fr.Summary.DurationMinutes = ParseDuration(it.Duration)
	fr.Summary.TransferCount = it.TransferCount
	fr.Summary.IsDirect = it.IsDirect
	fr.Segments = it.Segments

	last, ok := it.LastSegment()
	if !ok {
		return fr
	}
	if at, err := last.Arrival.At(); err == nil {
		fr.Summary.ArrivalTime = &at
	}

	fr.Path = make([]network.Code, 0, len(it.Segments)+1)
	for _, seg := range it.Segments {
		fr.Path = append(fr.Path, network.Code(seg.Departure.Airport))
	}
	fr.Path = append(fr.Path, network.Code(last.Arrival.Airport))

	return fr
}

// Format renders every selected route
func (r Routes) Format() FormattedRoutes {
	return FormattedRoutes{
		Cheapest: FormatRoute(r.Cheapest),
		Fastest:  FormatRoute(r.Fastest),
		Earliest: FormatRoute(r.Earliest),
		Balanced: FormatRoute(r.Balanced),
	}
}
