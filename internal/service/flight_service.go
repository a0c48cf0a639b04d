package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/flightnet-backend/internal/coupon"
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/network"
	"github.com/jengzang/flightnet-backend/internal/optimizer"
	"github.com/jengzang/flightnet-backend/internal/provider"
)

// MsgNoBusiness is shown when a business class search finds nothing
const MsgNoBusiness = "Seçilen tarihte BUSINESS sınıfında uçuş bulunamadı."

// Optimization is an optimizer result with its display routes
type Optimization struct {
	optimizer.Result
	FormattedRoutes optimizer.FormattedRoutes `json:"formatted_routes"`
}

// SearchResponse is the outcome of the search pipeline
type SearchResponse struct {
	Search       models.SearchResult `json:"search"`
	Optimization Optimization        `json:"optimization"`
}

// FlightService runs flight searches and offer optimization
type FlightService struct {
	networks *NetworkService
	provider provider.Provider
	coupons  *CouponService
	now      func() time.Time
}

// NewFlightService creates a new flight service
func NewFlightService(networks *NetworkService, p provider.Provider, coupons *CouponService) *FlightService {
	return &FlightService{
		networks: networks,
		provider: p,
		coupons:  coupons,
		now:      time.Now,
	}
}

// Search queries the provider, applies the coupon, checks the cabin class
// and optimizes what is left
func (s *FlightService) Search(ctx context.Context, params models.SearchParams) (*SearchResponse, error) {
	params.Origin = string(normalizeCode(params.Origin))
	params.Destination = string(normalizeCode(params.Destination))
	params.CabinClass = strings.ToUpper(strings.TrimSpace(params.CabinClass))
	if params.CabinClass == "" {
		params.CabinClass = models.CabinEconomy
	}
	if params.DepartureDate == "" {
		params.DepartureDate = s.now().Format(provider.DateLayout)
	}
	if params.Origin == "" || params.Destination == "" {
		return nil, provider.ErrMissingParams
	}
	if params.Origin == params.Destination {
		return nil, ErrSameAirport
	}
	if params.ArrivalTime != "" && !optimizer.ValidClock(params.ArrivalTime) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidArrivalTime, params.ArrivalTime)
	}

	offers, err := s.provider.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	if code := strings.TrimSpace(params.CouponCode); code != "" && s.coupons != nil {
		offers = s.coupons.Redeem(offers, code)
	}

	result := models.SearchResult{
		Offers:     offers,
		CabinClass: params.CabinClass,
	}
	if len(offers) == 0 && params.CabinClass == models.CabinBusiness {
		result.CabinClassWarning = models.CabinBusiness
		result.Message = MsgNoBusiness
	} else {
		result.CouponStatus = coupon.StatusMessage(offers)
	}

	return &SearchResponse{
		Search:       result,
		Optimization: s.optimize(result, params),
	}, nil
}

// Optimize runs the optimizer over offers supplied by the client
func (s *FlightService) Optimize(req models.OptimizeRequest) (*Optimization, error) {
	p := req.SearchParams
	if p.ArrivalTime != "" && !optimizer.ValidClock(p.ArrivalTime) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidArrivalTime, p.ArrivalTime)
	}
	p.Origin = string(normalizeCode(p.Origin))
	p.Destination = string(normalizeCode(p.Destination))

	result := models.SearchResult{
		Offers:            req.Offers,
		CabinClass:        p.CabinClass,
		CabinClassWarning: req.CabinClassWarning,
		Message:           req.Message,
	}
	opt := s.optimize(result, p)
	return &opt, nil
}

func (s *FlightService) optimize(result models.SearchResult, p models.SearchParams) Optimization {
	res := optimizer.New(s.networks.Network()).Optimize(result, optimizer.Params{
		Origin:      network.Code(p.Origin),
		Destination: network.Code(p.Destination),
		ArrivalTime: p.ArrivalTime,
	})
	return Optimization{
		Result:          res,
		FormattedRoutes: res.Routes.Format(),
	}
}
