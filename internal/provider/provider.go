// Package provider supplies flight offers for a search.
package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/flightnet-backend/internal/models"
)

// Provider errors
var (
	ErrMissingParams  = errors.New("origin, destination and departure date are required")
	ErrInvalidDate    = errors.New("departure date must be YYYY-MM-DD")
	ErrUnknownAirport = errors.New("unknown airport")
)

// DateLayout is the departure date format of a search
const DateLayout = "2006-01-02"

// Provider searches flight offers for one origin, destination and date
type Provider interface {
	Search(ctx context.Context, params models.SearchParams) ([]models.FlightOffer, error)
}

// Carriers maps IATA carrier codes to display names
var Carriers = map[string]string{
	"TK": "Türk Hava Yolları",
	"PC": "Pegasus",
	"XQ": "SunExpress",
	"AJ": "AnadoluJet",
	"VF": "Ajet",
	"8Q": "Onur Air",
	"FH": "Freebird Airlines",
	"J2": "Azerbaijan Airlines",
	"LH": "Lufthansa",
	"AF": "Air France",
	"BA": "British Airways",
}

// AirlineName returns the display name of a carrier, or the code itself
func AirlineName(code string) string {
	if name, ok := Carriers[code]; ok {
		return name
	}
	return code
}

// departureDate validates the search and parses its date
func departureDate(p models.SearchParams) (time.Time, error) {
	if p.Origin == "" || p.Destination == "" || p.DepartureDate == "" {
		return time.Time{}, ErrMissingParams
	}
	d, err := time.Parse(DateLayout, p.DepartureDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, p.DepartureDate)
	}
	return d, nil
}

// cabinOf normalizes the requested cabin, defaulting to economy
func cabinOf(p models.SearchParams) string {
	c := strings.ToUpper(strings.TrimSpace(p.CabinClass))
	if c == "" {
		return models.CabinEconomy
	}
	return c
}

// FormatDuration renders minutes as an ISO-8601 duration like PT2H30M
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("PT%dH%dM", h, m)
	case h > 0:
		return fmt.Sprintf("PT%dH", h)
	default:
		return fmt.Sprintf("PT%dM", m)
	}
}
