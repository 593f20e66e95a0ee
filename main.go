package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	database "github.com/planora-ai/planora-api/app/db"
	appLogger "github.com/planora-ai/planora-api/app/logger"
	appmetrics "github.com/planora-ai/planora-api/app/observability/metrics"
	"github.com/planora-ai/planora-api/app/tracer"
	"github.com/planora-ai/planora-api/config"
	"github.com/planora-ai/planora-api/internal/api/booking"
	"github.com/planora-ai/planora-api/internal/api/chat"
	"github.com/planora-ai/planora-api/internal/api/destinations"
	"github.com/planora-ai/planora-api/internal/api/enrichment"
	generativeAI "github.com/planora-ai/planora-api/internal/api/generative_ai"
	"github.com/planora-ai/planora-api/internal/api/search"
	"github.com/planora-ai/planora-api/internal/api/trip"
	"github.com/planora-ai/planora-api/internal/api/weather"
	"github.com/planora-ai/planora-api/internal/router"
	"github.com/planora-ai/planora-api/internal/types"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics()
	appmetrics.InitAppMetrics()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}
	err = database.RunMigrations(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()
	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- Model Client ---
	// A missing API key degrades to synthesized plans instead of refusing
	// to start.
	var model trip.ModelClient
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		logger.Warn("Generative model unavailable, plans will use fallback synthesis", slog.Any("error", err))
		model = unavailableModel{}
	} else {
		model = aiClient
	}

	// --- Dependency Injection ---
	metrics := appmetrics.Get()
	gazetteer := destinations.NewService(logger)

	weatherClient := weather.NewClient(cfg.Providers.OpenWeather.BaseURL, cfg.Providers.OpenWeather.Timeout)
	weatherService := weather.NewService(weatherClient, gazetteer, logger)

	searchClient := search.NewClient(cfg.Providers.Serp.BaseURL, cfg.Providers.Serp.Timeout, cfg.Providers.Serp.MaxRetries)
	searchService := search.NewService(searchClient, logger)

	enrichmentService := enrichment.NewService(weatherService, searchService, metrics, logger)
	tripService := trip.NewService(model, gazetteer, metrics, logger)
	chatService := chat.NewService(model, cfg.Gemini.Model, gazetteer, logger)

	bookingRepo := booking.NewBookingRepository(pool, logger)
	bookingService := booking.NewService(bookingRepo, metrics, logger)

	routerConfig := &router.Config{
		TripHandler:         trip.NewTripHandler(tripService, enrichmentService, gazetteer, cfg.Trip.MinBudget, cfg.Trip.MaxDays, logger),
		DestinationsHandler: destinations.NewDestinationsHandler(gazetteer, logger),
		WeatherHandler:      weather.NewWeatherHandler(weatherService, gazetteer, logger),
		SearchHandler:       search.NewSearchHandler(searchService, gazetteer, logger),
		ChatHandler:         chat.NewChatHandler(chatService, gazetteer, logger),
		BookingHandler:      booking.NewBookingHandler(bookingService, logger),
	}
	mainRouter := router.SetupRouter(routerConfig)

	r := chi.NewMux()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5, "application/json"))
	r.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// unavailableModel stands in when no API key is configured. Every call
// reports ErrModelUnavailable so planners take their fallback path.
type unavailableModel struct{}

func (unavailableModel) GenerateWithSystem(context.Context, string, string) (string, error) {
	return "", types.ErrModelUnavailable
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
