package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openshelf/reserve/api/internal/config"
	"github.com/openshelf/reserve/api/internal/database"
	"github.com/openshelf/reserve/api/internal/handler"
	"github.com/openshelf/reserve/api/internal/jobs"
	"github.com/openshelf/reserve/api/internal/middleware"
	"github.com/openshelf/reserve/api/internal/repository"
	"github.com/openshelf/reserve/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	reservationRepo := repository.NewReservationRepository(db)
	resourceRepo := repository.NewResourceRepository(db)

	// Initialize services
	resourceService := service.NewResourceService(service.ResourceServiceConfig{
		Repo: resourceRepo,
	})

	reservationService := service.NewReservationService(service.ReservationServiceConfig{
		Repo:         reservationRepo,
		ResourceRepo: resourceRepo,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize request metrics
	metrics := middleware.NewMetrics("reserve")

	// Start retention sweeper for ended reservations
	retentionSweeper := jobs.NewRetentionSweeper(reservationService, cfg.Retention.SweepInterval, cfg.Retention.KeepFor)
	retentionSweeper.Start()
	defer retentionSweeper.Stop()

	// Initialize handlers
	reservationHandler := handler.NewReservationHandler(reservationService)
	resourceHandler := handler.NewResourceHandler(resourceService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Metrics endpoint
	mux.Handle("GET /metrics", metrics.Handler())

	// Reservation endpoints
	mux.HandleFunc("POST /v1/reservations", reservationHandler.CreateReservation)
	mux.HandleFunc("GET /v1/reservations/{reservationId}", reservationHandler.GetReservation)
	mux.HandleFunc("PATCH /v1/reservations/{reservationId}", reservationHandler.UpdateReservation)
	mux.HandleFunc("DELETE /v1/reservations/{reservationId}", reservationHandler.DeleteReservation)

	// Resource endpoints
	mux.HandleFunc("GET /v1/resources", resourceHandler.ListResources)
	mux.HandleFunc("GET /v1/resources/{resourceId}", resourceHandler.GetResource)
	mux.HandleFunc("GET /v1/resources/{resourceId}/reservations", reservationHandler.GetResourceReservations)
	mux.HandleFunc("GET /v1/resources/{resourceId}/availability", reservationHandler.CheckAvailability)

	// User-scoped reservation endpoints
	mux.HandleFunc("GET /v1/users/{userId}/reservations", reservationHandler.GetUserReservations)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		metrics.Middleware,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
