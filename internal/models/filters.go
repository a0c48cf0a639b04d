package models

// RouteQuery represents query parameters for a point-to-point route lookup
type RouteQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// SearchParams represents the flight search form.
// Origin and Destination also anchor the pruned graph.
type SearchParams struct {
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination"`
	DepartureDate string `form:"departureDate" json:"departure_date"` // YYYY-MM-DD
	ArrivalTime   string `form:"arrivalTime" json:"arrival_time"`     // HH:MM, optional
	CabinClass    string `form:"cabinClass" json:"cabin_class"`       // ECONOMY, BUSINESS, ...
	Adults        int    `form:"adults" json:"adults"`
	CouponCode    string `form:"couponCode" json:"coupon_code"`
}

// OptimizeRequest is the body of POST /api/v1/flights/optimize
type OptimizeRequest struct {
	Offers            []FlightOffer `json:"offers"`
	SearchParams      SearchParams  `json:"search_params"`
	CabinClassWarning string        `json:"cabin_class_warning,omitempty"`
	Message           string        `json:"message,omitempty"`
}

// Cabin classes
const (
	CabinEconomy  = "ECONOMY"
	CabinBusiness = "BUSINESS"
)
