package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/flightnet-backend/internal/provider"
	"github.com/jengzang/flightnet-backend/internal/service"
	"github.com/jengzang/flightnet-backend/pkg/response"
)

// respondError maps service and provider errors to HTTP statuses
func respondError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, service.ErrAirportNotFound),
		errors.Is(err, service.ErrNoRoute):
		response.Error(c, http.StatusNotFound, message, err)
	case errors.Is(err, service.ErrSameAirport),
		errors.Is(err, service.ErrInvalidArrivalTime),
		errors.Is(err, provider.ErrMissingParams),
		errors.Is(err, provider.ErrInvalidDate),
		errors.Is(err, provider.ErrUnknownAirport):
		response.BadRequest(c, message, err)
	default:
		response.InternalError(c, message, err)
	}
}
