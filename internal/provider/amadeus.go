package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jengzang/flightnet-backend/internal/models"
)

// amadeusResponse is the subset of a flight-offers search response we read
type amadeusResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				Departure   amadeusEndpoint `json:"departure"`
				Arrival     amadeusEndpoint `json:"arrival"`
				CarrierCode string          `json:"carrierCode"`
				Number      string          `json:"number"`
				Duration    string          `json:"duration"`
			} `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

type amadeusEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

// DecodeAmadeus converts a flight-offers search response into offers
func DecodeAmadeus(r io.Reader) ([]models.FlightOffer, error) {
	var resp amadeusResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode flight offers: %w", err)
	}

	offers := make([]models.FlightOffer, 0, len(resp.Data))
	for _, d := range resp.Data {
		price, err := strconv.ParseFloat(d.Price.Total, 64)
		if err != nil {
			return nil, fmt.Errorf("offer %s: invalid price %q: %w", d.ID, d.Price.Total, err)
		}

		offer := models.FlightOffer{
			ID:          d.ID,
			Price:       price,
			Currency:    d.Price.Currency,
			Itineraries: make([]models.Itinerary, 0, len(d.Itineraries)),
		}
		for _, it := range d.Itineraries {
			segs := make([]models.Segment, 0, len(it.Segments))
			for _, s := range it.Segments {
				segs = append(segs, models.Segment{
					Departure:    models.Endpoint{Airport: s.Departure.IATACode, Time: s.Departure.At, Terminal: s.Departure.Terminal},
					Arrival:      models.Endpoint{Airport: s.Arrival.IATACode, Time: s.Arrival.At, Terminal: s.Arrival.Terminal},
					Carrier:      s.CarrierCode,
					FlightNumber: s.CarrierCode + s.Number,
					Duration:     s.Duration,
					Airline:      AirlineName(s.CarrierCode),
				})
			}
			offer.Itineraries = append(offer.Itineraries, models.NewItinerary(it.Duration, segs))
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// Static serves a fixed set of offers, such as a recorded search response.
// Offers are returned when their outbound itinerary connects the requested
// airports on the requested date.
type Static struct {
	offers []models.FlightOffer
}

// NewStatic creates a provider over a fixed offer set
func NewStatic(offers []models.FlightOffer) *Static {
	return &Static{offers: offers}
}

// LoadStatic decodes a recorded flight-offers response
func LoadStatic(r io.Reader) (*Static, error) {
	offers, err := DecodeAmadeus(r)
	if err != nil {
		return nil, err
	}
	return NewStatic(offers), nil
}

// Search filters the recorded offers by origin, destination and date
func (s *Static) Search(ctx context.Context, p models.SearchParams) ([]models.FlightOffer, error) {
	day, err := departureDate(p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := []models.FlightOffer{}
	for _, o := range s.offers {
		it, ok := o.FirstItinerary()
		if !ok || len(it.Segments) == 0 {
			continue
		}
		first := it.Segments[0]
		last := it.Segments[len(it.Segments)-1]
		if first.Departure.Airport != p.Origin || last.Arrival.Airport != p.Destination {
			continue
		}
		dep, err := first.Departure.At()
		if err != nil || dep.Format(DateLayout) != day.Format(DateLayout) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
