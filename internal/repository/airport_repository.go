package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/flightnet-backend/internal/database"
	"github.com/jengzang/flightnet-backend/internal/models"
)

// AirportRepository handles database operations for airports
type AirportRepository struct {
	db *sql.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *sql.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// ListAirports retrieves all airports in dataset order
func (r *AirportRepository) ListAirports(ctx context.Context) ([]models.Airport, error) {
	query := `SELECT iata, icao, name, city, lat, lon, type, opening_year, flights
		FROM airports ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	airports := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		var year sql.NullInt64
		err := rows.Scan(&a.IATA, &a.ICAO, &a.Name, &a.City, &a.Lat, &a.Lon, &a.Type, &year, &a.Flights)
		if err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		if year.Valid {
			y := int(year.Int64)
			a.OpeningYear = &y
		}
		airports = append(airports, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate airports: %w", err)
	}

	return airports, nil
}

// ReplaceAll swaps the stored dataset for airports, keeping their order
func (r *AirportRepository) ReplaceAll(ctx context.Context, airports []models.Airport) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM airports"); err != nil {
			return fmt.Errorf("failed to clear airports: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO airports
			(iata, icao, name, city, lat, lon, type, opening_year, flights, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare airport insert: %w", err)
		}
		defer stmt.Close()

		for i, a := range airports {
			var year sql.NullInt64
			if a.OpeningYear != nil {
				year = sql.NullInt64{Int64: int64(*a.OpeningYear), Valid: true}
			}
			_, err := stmt.ExecContext(ctx, a.IATA, a.ICAO, a.Name, a.City, a.Lat, a.Lon, a.Type, year, a.Flights, i)
			if err != nil {
				return fmt.Errorf("failed to insert airport %s: %w", a.IATA, err)
			}
		}
		return nil
	})
}
