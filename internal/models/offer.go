package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are tried in order when parsing segment times.
// Search providers usually send local wall-clock times without a zone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FlightOffer is one bookable result from a flight search provider.
// Offers are treated as immutable; coupon effects are carried in Coupon.
type FlightOffer struct {
	ID          string           `json:"id"`
	Price       float64          `json:"price"`
	Currency    string           `json:"currency"`
	Itineraries []Itinerary      `json:"itineraries"`
	Coupon      CouponAdjustment `json:"-"`
}

// Itinerary is an ordered list of segments from origin to destination
type Itinerary struct {
	Duration      string    `json:"duration"` // ISO-8601, e.g. PT2H30M
	Segments      []Segment `json:"segments"`
	TransferCount int       `json:"transfer_count"`
	IsDirect      bool      `json:"is_direct"`
}

// Segment is a single flight leg
type Segment struct {
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	Carrier      string   `json:"carrier"` // IATA carrier code, e.g. TK
	FlightNumber string   `json:"flight_number,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Airline      string   `json:"airline,omitempty"` // Display name
}

// Endpoint is the departure or arrival side of a segment
type Endpoint struct {
	Airport  string `json:"airport"`
	Time     string `json:"time"` // ISO timestamp
	Terminal string `json:"terminal,omitempty"`
}

// At parses the endpoint timestamp
func (e Endpoint) At() (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, e.Time); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", e.Time)
}

// FirstItinerary returns the outbound itinerary
func (o FlightOffer) FirstItinerary() (Itinerary, bool) {
	if len(o.Itineraries) == 0 {
		return Itinerary{}, false
	}
	return o.Itineraries[0], true
}

// LastSegment returns the final segment of the itinerary
func (it Itinerary) LastSegment() (Segment, bool) {
	if len(it.Segments) == 0 {
		return Segment{}, false
	}
	return it.Segments[len(it.Segments)-1], true
}

// NewItinerary builds an itinerary and derives its transfer count and direct flag
func NewItinerary(duration string, segments []Segment) Itinerary {
	transfers := len(segments) - 1
	if transfers < 0 {
		transfers = 0
	}
	return Itinerary{
		Duration:      duration,
		Segments:      segments,
		TransferCount: transfers,
		IsDirect:      len(segments) == 1,
	}
}

// WithCoupon returns a copy of the offer with a new price and coupon adjustment
func (o FlightOffer) WithCoupon(price float64, adj CouponAdjustment) FlightOffer {
	o.Price = price
	o.Coupon = adj
	return o
}

type flightOfferAlias FlightOffer

type flightOfferJSON struct {
	flightOfferAlias
	Coupon *couponJSON `json:"coupon,omitempty"`
}

// MarshalJSON writes the coupon adjustment with an explicit kind tag
func (o FlightOffer) MarshalJSON() ([]byte, error) {
	return json.Marshal(flightOfferJSON{
		flightOfferAlias: flightOfferAlias(o),
		Coupon:           encodeCoupon(o.Coupon),
	})
}

// UnmarshalJSON reads the tagged coupon adjustment back into its variant
func (o *FlightOffer) UnmarshalJSON(data []byte) error {
	var aux flightOfferJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	adj, err := decodeCoupon(aux.Coupon)
	if err != nil {
		return err
	}
	*o = FlightOffer(aux.flightOfferAlias)
	o.Coupon = adj
	return nil
}

// SearchResult is what a flight search hands to the optimizer.
// A non-empty CabinClassWarning means the provider had no seats in the
// requested cabin and the offers must not be optimized.
type SearchResult struct {
	Offers            []FlightOffer `json:"offers"`
	CabinClass        string        `json:"cabin_class,omitempty"`
	CabinClassWarning string        `json:"cabin_class_warning,omitempty"`
	Message           string        `json:"message,omitempty"`
	CouponStatus      string        `json:"coupon_status,omitempty"`
}
