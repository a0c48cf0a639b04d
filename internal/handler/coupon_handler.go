package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/flightnet-backend/internal/service"
	"github.com/jengzang/flightnet-backend/pkg/response"
)

// CouponHandler handles HTTP requests for coupons
type CouponHandler struct {
	service *service.CouponService
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(service *service.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

// Validate handles GET /api/v1/coupons/:code.
// Invalid and expired coupons are a normal answer, not an HTTP error.
func (h *CouponHandler) Validate(c *gin.Context) {
	response.Success(c, h.service.Validate(c.Param("code")))
}
