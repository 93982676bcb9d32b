package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "ayudame3d-backend/internal/api/http"
	"ayudame3d-backend/internal/config"
	"ayudame3d-backend/internal/logger"
	"ayudame3d-backend/internal/repository/postgres"
	"ayudame3d-backend/internal/security"
	"ayudame3d-backend/internal/service"
	"ayudame3d-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Ayudame3D Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Object Storage
	objectStorage, err := storage.NewS3Storage(storage.Config{
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		logger.Error("Failed to initialize object storage", "error", err)
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.From,
		cfg.SendGrid.FromName,
		cfg.SendGrid.FrontendURL,
	)
	authSvc := service.NewAuthService(store.UserRepository, emailSvc, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.RoleRepository)
	documentSvc := service.NewDocumentService(store.DocumentRepository)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.DocumentRepository,
		store.UserRepository,
		store.StatusRepository,
		emailSvc,
		objectStorage,
		store,
	)

	// Initialize HTTP API
	router := httpapi.NewRouter(authSvc, userSvc, orderSvc, documentSvc, tokenManager)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
