package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MohammedShoaib-dev/FitMate/internal/activity"
	"github.com/MohammedShoaib-dev/FitMate/internal/config"
	"github.com/MohammedShoaib-dev/FitMate/internal/db"
	"github.com/MohammedShoaib-dev/FitMate/internal/event"
	"github.com/MohammedShoaib-dev/FitMate/internal/logger"
	"github.com/MohammedShoaib-dev/FitMate/internal/occupancy"
	"github.com/MohammedShoaib-dev/FitMate/internal/planner"
	"github.com/MohammedShoaib-dev/FitMate/internal/server"
)

// @title FitMate API
// @version 1.0
// @description API for the FitMate gym management platform.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting FitMate application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	recorder := activity.NewRecorder(redisClient)
	defer recorder.Close()

	window := time.Duration(cfg.ActivityWindowMinutes) * time.Minute
	estimator, err := occupancy.NewEstimator(recorder, cfg.GymCapacity, window)
	if err != nil {
		logger.Fatalf("Failed to build occupancy estimator: %v", err)
	}

	bus := event.NewBus()
	defer bus.Close()
	go logDomainEvents(bus)

	var generator planner.Generator
	if cfg.AIAPIKey != "" {
		generator = planner.NewOpenAIGenerator(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		logger.Info("AI plan generation enabled", "model", cfg.AIModel)
	} else {
		logger.Warn("AI_API_KEY not set, plan generation disabled")
	}
	planService := planner.NewService(generator)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Stale activity entries outside the estimation window get pruned
	// periodically so the sorted set does not grow without bound.
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := recorder.Trim(ctx, time.Now().Add(-2*window)); err != nil {
					logger.WithError(err).Warn("failed to trim activity entries")
				}
			}
		}
	}()

	srv := server.New(database, cfg, estimator, recorder, bus, planService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// logDomainEvents writes an audit line for every domain event until the
// bus closes.
func logDomainEvents(bus *event.Bus) {
	classes := bus.Subscribe(event.TopicClassCreated)
	booked := bus.Subscribe(event.TopicBookingCreated)
	cancelled := bus.Subscribe(event.TopicBookingCancelled)

	for {
		select {
		case evt, ok := <-classes:
			if !ok {
				return
			}
			logger.Info("domain event", "topic", evt.Topic, "payload", evt.Payload)
		case evt, ok := <-booked:
			if !ok {
				return
			}
			logger.Info("domain event", "topic", evt.Topic, "payload", evt.Payload)
		case evt, ok := <-cancelled:
			if !ok {
				return
			}
			logger.Info("domain event", "topic", evt.Topic, "payload", evt.Payload)
		}
	}
}
