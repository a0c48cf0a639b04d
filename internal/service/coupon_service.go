package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jengzang/flightnet-backend/internal/coupon"
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/repository"
)

// CouponService validates and redeems refund coupons
type CouponService struct {
	source repository.CouponSource
	now    func() time.Time

	mu   sync.RWMutex
	book *coupon.Book
}

// NewCouponService creates a coupon service with an empty book.
// A nil source disables coupons: every code is reported invalid.
func NewCouponService(source repository.CouponSource) *CouponService {
	return &CouponService{
		source: source,
		now:    time.Now,
		book:   coupon.NewBook(nil),
	}
}

// Reload reads the coupon dataset
func (s *CouponService) Reload(ctx context.Context) error {
	if s.source == nil {
		return nil
	}

	coupons, err := s.source.ListCoupons(ctx)
	if err != nil {
		return fmt.Errorf("failed to load coupons: %w", err)
	}

	book := coupon.NewBook(coupons)
	s.mu.Lock()
	s.book = book
	s.mu.Unlock()

	log.Printf("Loaded %d coupons", book.Len())
	return nil
}

func (s *CouponService) current() *coupon.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book
}

// Validate checks a coupon code against today's date
func (s *CouponService) Validate(code string) models.CouponValidation {
	return s.current().Validate(code, s.now())
}

// Redeem applies a coupon code to offers
func (s *CouponService) Redeem(offers []models.FlightOffer, code string) []models.FlightOffer {
	return s.current().Redeem(offers, code, s.now())
}
