// Package coupon validates refund coupons and applies them to flight offers.
package coupon

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/flightnet-backend/internal/models"
)

// User-facing messages
const (
	MsgInvalid = "Girdiğiniz kupon kodu geçersizdir."
	MsgExpired = "Kupon kodunuzun süresi dolmuştur."
)

// airlineAliases maps a coupon airline to the carrier codes and names
// that identify its segments. Order matters: the first key matching the
// coupon airline wins.
var airlineAliases = []struct {
	name    string
	aliases []string
}{
	{"Ajet", []string{"AJ", "VF", "Ajet"}},
	{"AnadoluJet", []string{"AJ", "AnadoluJet", "TK-AnadoluJet"}},
	{"Pegasus", []string{"PC", "Pegasus"}},
	{"SunExpress", []string{"XQ", "SunExpress"}},
	{"Turkish Airlines", []string{"TK", "Turkish Airlines"}},
}

// Book is an in-memory index of coupons keyed by upper-cased code
type Book struct {
	coupons map[string]models.Coupon
}

// NewBook indexes coupons by code. Later duplicates replace earlier ones.
func NewBook(coupons []models.Coupon) *Book {
	b := &Book{coupons: make(map[string]models.Coupon, len(coupons))}
	for _, c := range coupons {
		b.coupons[strings.ToUpper(c.Code)] = c
	}
	return b
}

// Len returns the number of coupons
func (b *Book) Len() int {
	return len(b.coupons)
}

// Lookup finds a coupon by code, case-insensitively
func (b *Book) Lookup(code string) (models.Coupon, bool) {
	c, ok := b.coupons[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Validate checks that the coupon exists and has not expired. A coupon
// stays valid through its expiry date.
func (b *Book) Validate(code string, now time.Time) models.CouponValidation {
	c, ok := b.Lookup(code)
	if !ok {
		return models.CouponValidation{Valid: false, Message: MsgInvalid}
	}
	if Expired(c, now) {
		return models.CouponValidation{Valid: false, Message: MsgExpired}
	}
	return models.CouponValidation{Valid: true, Coupon: &c}
}

// Redeem validates code and applies it to offers. An invalid or expired
// coupon marks every offer with a warning carrying the reason.
func (b *Book) Redeem(offers []models.FlightOffer, code string, now time.Time) []models.FlightOffer {
	v := b.Validate(code, now)
	if !v.Valid {
		return Reject(offers, v.Message)
	}
	return Apply(offers, *v.Coupon)
}

// Expired reports whether the expiry date lies before the calendar day of now
func Expired(c models.Coupon, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expiry := time.Date(c.ExpiryDate.Year(), c.ExpiryDate.Month(), c.ExpiryDate.Day(), 0, 0, 0, 0, time.UTC)
	return expiry.Before(today)
}

// Apply discounts every offer whose outbound itinerary has a segment
// operated by the coupon's airline. Discounted offers come first, then the
// rest, both in input order. When no offer matches, all offers are returned
// in order with a warning.
func Apply(offers []models.FlightOffer, c models.Coupon) []models.FlightOffer {
	matched := make([]models.FlightOffer, 0, len(offers))
	others := make([]models.FlightOffer, 0, len(offers))

	for _, o := range offers {
		if !operatedBy(o, c.Airline) {
			others = append(others, o.WithCoupon(o.Price, models.CouponNone{}))
			continue
		}
		matched = append(matched, o.WithCoupon(DiscountedPrice(o.Price, c.DiscountAmount), models.CouponApplied{
			Code:          c.Code,
			Discount:      c.DiscountAmount,
			Airline:       c.Airline,
			OriginalPrice: o.Price,
		}))
	}

	if len(matched) == 0 {
		return Reject(offers, fmt.Sprintf("Kuponunuz bağlı olduğu %s havayolu şirketinin bu rota için uçuşu bulunmamaktadır.", c.Airline))
	}
	return append(matched, others...)
}

// Reject marks every offer with a coupon warning and leaves prices alone
func Reject(offers []models.FlightOffer, message string) []models.FlightOffer {
	out := make([]models.FlightOffer, len(offers))
	for i, o := range offers {
		out[i] = o.WithCoupon(o.Price, models.CouponWarning{Message: message})
	}
	return out
}

// DiscountedPrice subtracts the discount and floors the result at zero
func DiscountedPrice(price, discount float64) float64 {
	if p := price - discount; p > 0 {
		return p
	}
	return 0
}

// StatusMessage summarizes what a coupon did to a set of offers. It is
// empty when no coupon was involved.
func StatusMessage(offers []models.FlightOffer) string {
	for _, o := range offers {
		if applied, ok := o.Coupon.(models.CouponApplied); ok {
			return fmt.Sprintf("Kupon kodu uygulandı! %s uçuşlarında %s TL indirim.",
				applied.Airline, strconv.FormatFloat(applied.Discount, 'f', -1, 64))
		}
	}
	for _, o := range offers {
		if warning, ok := o.Coupon.(models.CouponWarning); ok {
			return warning.Message
		}
	}
	return ""
}

// MatchesAirline reports whether a segment's carrier code or airline name
// belongs to the coupon airline. Matching is case-insensitive and by
// substring, through the alias table when the coupon airline is known.
func MatchesAirline(segmentAirline, couponAirline string) bool {
	seg := strings.ToLower(strings.TrimSpace(segmentAirline))
	want := strings.ToLower(strings.TrimSpace(couponAirline))
	if seg == "" || want == "" {
		return false
	}

	for _, entry := range airlineAliases {
		key := strings.ToLower(entry.name)
		if !strings.Contains(key, want) && !strings.Contains(want, key) {
			continue
		}
		for _, alias := range entry.aliases {
			if strings.Contains(seg, strings.ToLower(alias)) {
				return true
			}
		}
		return false
	}

	return strings.Contains(seg, want)
}

func operatedBy(o models.FlightOffer, airline string) bool {
	it, ok := o.FirstItinerary()
	if !ok {
		return false
	}
	for _, seg := range it.Segments {
		if MatchesAirline(seg.Airline, airline) || MatchesAirline(seg.Carrier, airline) {
			return true
		}
	}
	return false
}
