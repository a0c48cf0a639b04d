package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/flightnet-backend/internal/api"
	"github.com/jengzang/flightnet-backend/internal/config"
	"github.com/jengzang/flightnet-backend/internal/database"
	"github.com/jengzang/flightnet-backend/internal/middleware"
	"github.com/jengzang/flightnet-backend/internal/models"
	"github.com/jengzang/flightnet-backend/internal/provider"
	"github.com/jengzang/flightnet-backend/internal/repository"
	"github.com/jengzang/flightnet-backend/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 数据源
	airports, coupons, closeDB := openSources(cfg)
	defer closeDB()

	ctx := context.Background()

	networks := service.NewNetworkService(airports)
	if err := networks.Reload(ctx); err != nil {
		log.Fatal("Failed to build flight network:", err)
	}

	couponService := service.NewCouponService(coupons)
	if err := couponService.Reload(ctx); err != nil {
		log.Printf("Warning: coupons disabled: %v", err)
	}

	offers := openProvider(cfg, networks)
	flights := service.NewFlightService(networks, offers, couponService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Stop()

	// 初始化路由
	router := api.SetupRouter(cfg, api.Services{
		Network: networks,
		Flights: flights,
		Coupons: couponService,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}

// openSources picks the airport and coupon datasets.
// The returned function releases the database, if one was opened.
func openSources(cfg *config.Config) (repository.AirportSource, repository.CouponSource, func()) {
	switch cfg.DatasetSource {
	case config.SourceSQLite:
		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		return repository.NewAirportRepository(db), repository.NewCouponRepository(db), func() { db.Close() }
	case config.SourceJSON:
		var coupons repository.CouponSource
		if cfg.CouponsFile != "" {
			coupons = repository.NewCouponFile(cfg.CouponsFile)
		}
		return repository.NewAirportFile(cfg.AirportsFile), coupons, func() {}
	default:
		log.Fatalf("Unknown DATASET_SOURCE %q", cfg.DatasetSource)
		return nil, nil, nil
	}
}

// openProvider serves a recorded flight-offers response when configured,
// otherwise generates offers from the network
func openProvider(cfg *config.Config, networks *service.NetworkService) provider.Provider {
	if cfg.OffersFile == "" {
		return provider.NewMock(networks.Network, cfg.Currency, models.CabinEconomy)
	}

	f, err := os.Open(cfg.OffersFile)
	if err != nil {
		log.Fatal("Failed to open offers file:", err)
	}
	defer f.Close()

	static, err := provider.LoadStatic(f)
	if err != nil {
		log.Fatal("Failed to load offers file:", err)
	}
	log.Printf("Serving recorded offers from %s", cfg.OffersFile)
	return static
}
