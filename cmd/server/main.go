package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "scooter-rental/internal/api/http"
	"scooter-rental/internal/config"
	"scooter-rental/internal/logger"
	"scooter-rental/internal/repository/postgres"
	"scooter-rental/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Scooter Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	rentalSvc := service.NewRentalService(store, store.RentalPeriodRepository, cfg.Billing.MaxRentCost)
	scooterSvc := service.NewScooterService(store.ScooterRepository)

	rentalHandler := httpapi.NewRentalHandler(rentalSvc)
	scooterHandler := httpapi.NewScooterHandler(scooterSvc)
	router := httpapi.NewRouter(rentalHandler, scooterHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
