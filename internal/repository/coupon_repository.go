package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jengzang/flightnet-backend/internal/coupon"
	"github.com/jengzang/flightnet-backend/internal/database"
	"github.com/jengzang/flightnet-backend/internal/models"
)

// CouponRepository handles database operations for coupons
type CouponRepository struct {
	db *sql.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// ListCoupons retrieves all coupons
func (r *CouponRepository) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	query := `SELECT code, airline, original_amount, discount_amount, issue_date, reason, expiry_date
		FROM coupons ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer rows.Close()

	coupons := []models.Coupon{}
	for rows.Next() {
		var c models.Coupon
		var expiry string
		err := rows.Scan(&c.Code, &c.Airline, &c.OriginalAmount, &c.DiscountAmount, &c.IssueDate, &c.Reason, &expiry)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		c.ExpiryDate, err = time.Parse(coupon.DateLayout, expiry)
		if err != nil {
			return nil, fmt.Errorf("coupon %s has invalid expiry date %q: %w", c.Code, expiry, err)
		}
		coupons = append(coupons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coupons: %w", err)
	}

	return coupons, nil
}

// ReplaceAll swaps the stored coupons for the given set
func (r *CouponRepository) ReplaceAll(ctx context.Context, coupons []models.Coupon) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM coupons"); err != nil {
			return fmt.Errorf("failed to clear coupons: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO coupons
			(code, airline, original_amount, discount_amount, issue_date, reason, expiry_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare coupon insert: %w", err)
		}
		defer stmt.Close()

		for _, c := range coupons {
			_, err := stmt.ExecContext(ctx, c.Code, c.Airline, c.OriginalAmount, c.DiscountAmount,
				c.IssueDate, c.Reason, c.ExpiryDate.Format(coupon.DateLayout))
			if err != nil {
				return fmt.Errorf("failed to insert coupon %s: %w", c.Code, err)
			}
		}
		return nil
	})
}
