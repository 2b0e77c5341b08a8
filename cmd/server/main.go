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

	"alcyxob/fitstack/internal/api"
	"alcyxob/fitstack/internal/config"
	"alcyxob/fitstack/internal/repository"
	filerepo "alcyxob/fitstack/internal/repository/file"
	mongorepo "alcyxob/fitstack/internal/repository/mongo"
	"alcyxob/fitstack/internal/service"
	"alcyxob/fitstack/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting FitStack server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Repositories (file or mongo, per config) ---
	var userRepo repository.UserRepository
	var recordRepo repository.RecordRepository

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureRecordIndexes(ctx, appDB.Collection("workout_records"))
			log.Println("Index creation process completed.")
		}()

		userRepo = mongorepo.NewMongoUserRepository(appDB)
		recordRepo = mongorepo.NewMongoRecordRepository(appDB)

	case config.DriverFile:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			log.Fatalf("FATAL: Could not create data directory %s: %v", cfg.Storage.DataDir, err)
		}
		userRepo = filerepo.NewUserStore(cfg.Storage.DataDir)
		recordRepo = filerepo.NewRecordStore(cfg.Storage.DataDir)
		log.Printf("Using file storage in %s", cfg.Storage.DataDir)

	default:
		log.Fatalf("FATAL: Unknown storage driver %q", cfg.Storage.Driver)
	}

	// --- File Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	recordService := service.NewRecordService(recordRepo, fileStorage, time.Now)
	statsService := service.NewStatsService(recordRepo, fileStorage, time.Now)

	// --- Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.Server.SeedDemo, authService, recordService, statsService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
