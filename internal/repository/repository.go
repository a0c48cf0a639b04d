// Package repository loads the static airport and coupon datasets.
package repository

import (
	"context"

	"github.com/jengzang/flightnet-backend/internal/models"
)

// AirportSource provides the airport dataset in dataset order
type AirportSource interface {
	ListAirports(ctx context.Context) ([]models.Airport, error)
}

// CouponSource provides the coupon dataset
type CouponSource interface {
	ListCoupons(ctx context.Context) ([]models.Coupon, error)
}
