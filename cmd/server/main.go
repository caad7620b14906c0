package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "gearshare-backend/internal/api/http"
	"gearshare-backend/internal/config"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/repository/postgres"
	"gearshare-backend/internal/security"
	"gearshare-backend/internal/service"

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
	logger.Info("Starting gearshare backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret)
	caller := httpapi.NewCallerResolver(tokenManager)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	userSvc := service.NewUserService(store.UserRepository)
	itemSvc := service.NewItemService(
		store.ItemRepository,
		store.BookingRepository,
		store.CommentRepository,
		store.UserRepository,
		store.ItemRequestRepository,
	)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.ItemRepository,
		store.UserRepository,
		emailSvc,
	)
	requestSvc := service.NewItemRequestService(
		store.ItemRequestRepository,
		store.ItemRepository,
		store.UserRepository,
	)

	router := httpapi.NewRouter(userSvc, itemSvc, bookingSvc, requestSvc, caller)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
