package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/service"
	"github.com/jengzang/flightnet-backend/pkg/response"
)

// NetworkHandler handles HTTP requests for airports and the route network
type NetworkHandler struct {
	network *service.NetworkService
	coupons *service.CouponService
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(network *service.NetworkService, coupons *service.CouponService) *NetworkHandler {
	return &NetworkHandler{network: network, coupons: coupons}
}

// GetAirports handles GET /api/v1/airports
func (h *NetworkHandler) GetAirports(c *gin.Context) {
	airports := h.network.Airports()
	if airports == nil {
		airports = []models.Airport{}
	}
	response.Success(c, gin.H{
		"data":  airports,
		"total": len(airports),
	})
}

// GetAirport handles GET /api/v1/airports/:iata
func (h *NetworkHandler) GetAirport(c *gin.Context) {
	airport, err := h.network.Airport(c.Param("iata"))
	if err != nil {
		respondError(c, "Airport not found", err)
		return
	}

	response.Success(c, airport)
}

// GetNetwork handles GET /api/v1/network
func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	response.Success(c, h.network.Network())
}

// GetStats handles GET /api/v1/network/stats
func (h *NetworkHandler) GetStats(c *gin.Context) {
	response.Success(c, h.network.Stats())
}

// Reload handles POST /api/v1/network/reload
func (h *NetworkHandler) Reload(c *gin.Context) {
	if err := h.network.Reload(c.Request.Context()); err != nil {
		response.InternalError(c, "Failed to reload network", err)
		return
	}
	if h.coupons != nil {
		if err := h.coupons.Reload(c.Request.Context()); err != nil {
			response.InternalError(c, "Failed to reload coupons", err)
			return
		}
	}

	n := h.network.Network()
	response.Success(c, gin.H{
		"airports":  n.Graph.Len(),
		"links":     len(n.Links),
		"dropped":   len(n.Dropped),
		"loaded_at": h.network.LoadedAt(),
	})
}

// GetShortestRoute handles GET /api/v1/routes/shortest
func (h *NetworkHandler) GetShortestRoute(c *gin.Context) {
	var query models.RouteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	route, err := h.network.ShortestRoute(query.From, query.To)
	if err != nil {
		respondError(c, "Failed to find route", err)
		return
	}

	response.Success(c, route)
}
