package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/flightnet-backend/internal/config"
	"github.com/jengzang/flightnet-backend/internal/handler"
	"github.com/jengzang/flightnet-backend/internal/middleware"
	"github.com/jengzang/flightnet-backend/internal/service"
)

// Services are the dependencies of the HTTP layer
type Services struct {
	Network *service.NetworkService
	Flights *service.FlightService
	Coupons *service.CouponService

	// Limiter guards /api/v1. When nil, one is built from cfg and never
	// stopped; the owner of a passed limiter calls Stop.
	Limiter *middleware.RateLimiter
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, svc Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		n := svc.Network.Network()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Flight network API is running",
			"airports":  n.Graph.Len(),
			"links":     len(n.Links),
			"loaded_at": svc.Network.LoadedAt(),
		})
	})

	networkHandler := handler.NewNetworkHandler(svc.Network, svc.Coupons)
	flightHandler := handler.NewFlightHandler(svc.Flights)
	couponHandler := handler.NewCouponHandler(svc.Coupons)

	limiter := svc.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		// 机场
		airports := api.Group("/airports")
		{
			airports.GET("", networkHandler.GetAirports)
			airports.GET("/:iata", networkHandler.GetAirport)
		}

		// 航线网络
		network := api.Group("/network")
		{
			network.GET("", networkHandler.GetNetwork)
			network.GET("/stats", networkHandler.GetStats)
			network.POST("/reload", networkHandler.Reload)
		}

		api.GET("/routes/shortest", networkHandler.GetShortestRoute)

		// 航班搜索与优化
		flights := api.Group("/flights")
		{
			flights.GET("/search", flightHandler.Search)
			flights.POST("/optimize", flightHandler.Optimize)
		}

		api.GET("/coupons/:code", couponHandler.Validate)
	}

	return r
}
