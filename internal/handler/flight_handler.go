package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/service"
	"github.com/jengzang/flightnet-backend/pkg/response"
)

// FlightHandler handles HTTP requests for flight search and optimization
type FlightHandler struct {
	service *service.FlightService
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service *service.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

// Search handles GET /api/v1/flights/search
func (h *FlightHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	result, err := h.service.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, "Flight search failed", err)
		return
	}

	response.Success(c, result)
}

// Optimize handles POST /api/v1/flights/optimize
func (h *FlightHandler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	result, err := h.service.Optimize(req)
	if err != nil {
		respondError(c, "Optimization failed", err)
		return
	}

	response.Success(c, result)
}
