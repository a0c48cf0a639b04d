package main

import (
	"context"
	"flag"
	"log"

	"github.com/jengzang/flightnet-backend/internal/database"
	"github.com/jengzang/flightnet-backend/internal/network"
	"github.com/jengzang/flightnet-backend/internal/repository"
)

func main() {
	// Command line flags
	dbPath := flag.String("db", "./data/flightnet.db", "Path to SQLite database")
	airportsFile := flag.String("airports", "./data/airports.json", "Airports JSON file")
	couponsFile := flag.String("coupons", "./data/coupons.csv", "Coupons CSV file, empty to skip")
	flag.Parse()

	db, err := database.Open(database.Config{Path: *dbPath})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	airports, err := repository.NewAirportFile(*airportsFile).ListAirports(ctx)
	if err != nil {
		log.Fatalf("Failed to read airports: %v", err)
	}

	// Build once to report adjacency codes that point nowhere
	n := network.Build(airports)
	for _, d := range n.Dropped {
		log.Printf("Warning: airport %s lists unknown destination %q", d.Source, d.Target)
	}

	if err := repository.NewAirportRepository(db).ReplaceAll(ctx, airports); err != nil {
		log.Fatalf("Failed to import airports: %v", err)
	}
	log.Printf("Imported %d airports (%d unique connections)", len(airports), n.Graph.EdgeCount())

	if *couponsFile == "" {
		return
	}

	coupons, err := repository.NewCouponFile(*couponsFile).ListCoupons(ctx)
	if err != nil {
		log.Fatalf("Failed to read coupons: %v", err)
	}
	if err := repository.NewCouponRepository(db).ReplaceAll(ctx, coupons); err != nil {
		log.Fatalf("Failed to import coupons: %v", err)
	}
	log.Printf("Imported %d coupons", len(coupons))
}
