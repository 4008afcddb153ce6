// Package main is the entry point for the SubTracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/subtracker/backend/config"
	"github.com/subtracker/backend/internal/infra/db"
	"github.com/subtracker/backend/internal/infra/dependency"
	"github.com/subtracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting SubTracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewSQLiteConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.SubscriptionModel{},
		&model.CategoryModel{},
		&model.SettingModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Connect to Redis for reminder de-duplication. The app runs without it;
	// the deduper then falls back to process memory.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Invalid Redis URL, reminder dedup falls back to memory", "error", err)
		} else {
			if cfg.Redis.Password != "" {
				opts.Password = cfg.Redis.Password
			}
			client := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			err = client.Ping(pingCtx).Err()
			cancel()
			if err != nil {
				slog.Warn("Redis unavailable, reminder dedup falls back to memory", "error", err)
				_ = client.Close()
			} else {
				redisClient = client
				defer func() { _ = redisClient.Close() }()
			}
		}
	}

	// Wire dependencies
	injector := dependency.NewInjector(cfg, database.DB(), redisClient, logger)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Start the reminder worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if injector.ReminderWorker != nil {
		go injector.ReminderWorker.Start(workerCtx)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
