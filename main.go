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
	"golang.org/x/sync/errgroup"

	database "github.com/wanderday/go-hangout-itinerary/app/db"
	appLogger "github.com/wanderday/go-hangout-itinerary/app/logger"
	"github.com/wanderday/go-hangout-itinerary/app/observability/metrics"
	"github.com/wanderday/go-hangout-itinerary/app/tracer"
	"github.com/wanderday/go-hangout-itinerary/config"
	"github.com/wanderday/go-hangout-itinerary/internal/api/auth"
	generativeAI "github.com/wanderday/go-hangout-itinerary/internal/api/generative_ai"
	"github.com/wanderday/go-hangout-itinerary/internal/api/itineraries"
	"github.com/wanderday/go-hangout-itinerary/internal/api/itinerary"
	"github.com/wanderday/go-hangout-itinerary/internal/api/places"
	"github.com/wanderday/go-hangout-itinerary/internal/cache"
	api "github.com/wanderday/go-hangout-itinerary/internal/router"
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

	logger := setupLogger(cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	metricsSrv, err := tracer.InitTracingAndMetrics("HangoutPlanner", cfg.Server.MetricsPort)
	if err != nil {
		logger.Error("Failed to initialize tracing/metrics", slog.Any("error", err))
		os.Exit(1)
	}
	metrics.InitAppMetrics()

	// --- Database Setup ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}

	// Run migrations before initializing the main pool
	if err = database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
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

	// --- Itinerary cache ---
	var itineraryCache cache.ItineraryCache
	if cfg.Cache.Backend == "redis" {
		redisClient, err := cache.NewRedisClient(cfg.Repositories.Redis)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisClient.Close()
		itineraryCache = cache.NewRedisCache(redisClient, logger)
		logger.Info("Using Redis itinerary cache", slog.String("addr", cfg.Repositories.Redis.Addr))
	} else {
		itineraryCache = cache.NewMemoryCache(cfg.Cache.TTL)
		logger.Info("Using in-memory itinerary cache")
	}

	// --- External providers ---
	var generator itinerary.Generator
	if cfg.Gemini.Enabled {
		aiClient, err := generativeAI.NewAIClient(ctx, cfg.Gemini.Model)
		if err != nil {
			logger.Warn("AI client unavailable, itineraries will come from the fallback catalog", slog.Any("error", err))
		} else {
			generator = aiClient
		}
	}

	var photos itinerary.PhotoResolver
	if cfg.Places.Enabled {
		photos = places.NewClient(cfg.Places.BaseURL)
	}

	// --- Dependency Injection ---
	authRepo := auth.NewPostgresRepository(pool, logger)
	authService := auth.NewService(authRepo, cfg.JWT, logger)
	authHandler := auth.NewHandler(authService, logger)

	itineraryService := itinerary.NewService(generator, photos, itineraryCache, cfg.Cache.TTL, metrics.Get(), logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	savedRepo := itineraries.NewPostgresRepository(pool, logger)
	savedService := itineraries.NewService(savedRepo, logger)
	savedHandler := itineraries.NewHandler(savedService, logger)

	// --- Router Setup ---
	mainRouter := api.SetupRouter(&api.Config{
		AuthHandler:            authHandler,
		ItineraryHandler:       itineraryHandler,
		ItinerariesHandler:     savedHandler,
		AuthenticateMiddleware: auth.Authenticate(logger, cfg.JWT),
	})

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// --- Start servers ---
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting metrics server", slog.String("address", metricsSrv.Addr))
		err := metricsSrv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutdown signal received, starting graceful shutdown...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
		}
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Metrics server graceful shutdown failed", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger(mode string) *slog.Logger {
	var logger *slog.Logger

	if mode == "development" || mode == "" {
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
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
