package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jengzang/flightnet-backend/internal/coupon"
	"github.com/jengzang/flightnet-backend/internal/models"
)

// airportRecord is one entry of the airports JSON dataset
type airportRecord struct {
	IATA    string  `json:"iata"`
	ICAO    string  `json:"icao"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Type    string  `json:"type"`
	Year    *int    `json:"year"`
	Flights string  `json:"flights"`
}

// AirportFile reads airports from a JSON array file
type AirportFile struct {
	path string
}

// NewAirportFile creates a JSON file airport source
func NewAirportFile(path string) *AirportFile {
	return &AirportFile{path: path}
}

// ListAirports reads and decodes the whole file
func (f *AirportFile) ListAirports(ctx context.Context) ([]models.Airport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open airports file: %w", err)
	}
	defer file.Close()

	var records []airportRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode airports file %s: %w", f.path, err)
	}

	airports := make([]models.Airport, 0, len(records))
	for _, r := range records {
		if r.IATA == "" {
			continue
		}
		airports = append(airports, models.Airport{
			IATA:        r.IATA,
			ICAO:        r.ICAO,
			Name:        r.Name,
			City:        r.City,
			Lat:         r.Lat,
			Lon:         r.Lon,
			Type:        r.Type,
			OpeningYear: r.Year,
			Flights:     r.Flights,
		})
	}

	return airports, nil
}

// CouponFile reads coupons from the CSV dataset
type CouponFile struct {
	path string
}

// NewCouponFile creates a CSV file coupon source
func NewCouponFile(path string) *CouponFile {
	return &CouponFile{path: path}
}

// ListCoupons reads and parses the whole file
func (f *CouponFile) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open coupons file: %w", err)
	}
	defer file.Close()

	coupons, err := coupon.ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse coupons file %s: %w", f.path, err)
	}
	return coupons, nil
}
