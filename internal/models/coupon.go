package models

import (
	"fmt"
	"time"
)

// Coupon is a refund credit issued for a cancelled ticket.
// It can be redeemed once against offers of the issuing airline.
type Coupon struct {
	Code           string    `json:"code" db:"code"`
	Airline        string    `json:"airline" db:"airline"`
	OriginalAmount float64   `json:"original_amount" db:"original_amount"`
	DiscountAmount float64   `json:"discount_amount" db:"discount_amount"`
	IssueDate      string    `json:"issue_date" db:"issue_date"` // YYYY-MM-DD
	Reason         string    `json:"reason" db:"reason"`
	ExpiryDate     time.Time `json:"expiry_date" db:"expiry_date"`
}

// CouponAdjustment kinds
const (
	CouponKindNone    = "none"
	CouponKindApplied = "applied"
	CouponKindWarning = "warning"
)

// CouponAdjustment describes what a coupon did to a single offer.
// It is a closed set: CouponNone, CouponApplied and CouponWarning.
type CouponAdjustment interface {
	Kind() string
	couponAdjustment()
}

// CouponNone means no coupon touched the offer
type CouponNone struct{}

// CouponApplied means the offer price was reduced by the coupon
type CouponApplied struct {
	Code          string  `json:"code"`
	Discount      float64 `json:"discount"`
	Airline       string  `json:"airline"`
	OriginalPrice float64 `json:"original_price"`
}

// CouponWarning carries a message explaining why a coupon was not applied
type CouponWarning struct {
	Message string `json:"message"`
}

func (CouponNone) Kind() string    { return CouponKindNone }
func (CouponApplied) Kind() string { return CouponKindApplied }
func (CouponWarning) Kind() string { return CouponKindWarning }

func (CouponNone) couponAdjustment()    {}
func (CouponApplied) couponAdjustment() {}
func (CouponWarning) couponAdjustment() {}

// couponJSON is the wire form shared by all variants
type couponJSON struct {
	Kind          string  `json:"kind"`
	Code          string  `json:"code,omitempty"`
	Discount      float64 `json:"discount,omitempty"`
	Airline       string  `json:"airline,omitempty"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Message       string  `json:"message,omitempty"`
}

func encodeCoupon(adj CouponAdjustment) *couponJSON {
	switch v := adj.(type) {
	case nil:
		return nil
	case CouponApplied:
		return &couponJSON{
			Kind:          v.Kind(),
			Code:          v.Code,
			Discount:      v.Discount,
			Airline:       v.Airline,
			OriginalPrice: v.OriginalPrice,
		}
	case CouponWarning:
		return &couponJSON{Kind: v.Kind(), Message: v.Message}
	default:
		return &couponJSON{Kind: adj.Kind()}
	}
}

func decodeCoupon(c *couponJSON) (CouponAdjustment, error) {
	if c == nil {
		return nil, nil
	}
	switch c.Kind {
	case CouponKindNone, "":
		return CouponNone{}, nil
	case CouponKindApplied:
		return CouponApplied{
			Code:          c.Code,
			Discount:      c.Discount,
			Airline:       c.Airline,
			OriginalPrice: c.OriginalPrice,
		}, nil
	case CouponKindWarning:
		return CouponWarning{Message: c.Message}, nil
	default:
		return nil, fmt.Errorf("unknown coupon kind %q", c.Kind)
	}
}

// CouponValidation is the result of looking up a coupon code
type CouponValidation struct {
	Valid   bool    `json:"valid"`
	Message string  `json:"message,omitempty"`
	Coupon  *Coupon `json:"coupon,omitempty"`
}
