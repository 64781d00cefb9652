package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/zatekoja/shiftboard/internal/adapters/cache"
	"github.com/zatekoja/shiftboard/internal/adapters/database"
	"github.com/zatekoja/shiftboard/internal/adapters/events"
	"github.com/zatekoja/shiftboard/internal/adapters/memory"
	"github.com/zatekoja/shiftboard/internal/api/handlers"
	"github.com/zatekoja/shiftboard/internal/api/routes"
	"github.com/zatekoja/shiftboard/internal/application/services"
	"github.com/zatekoja/shiftboard/internal/domain/repositories"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/shiftboard/internal/infrastructure/clients/redis"
	"github.com/zatekoja/shiftboard/internal/infrastructure/observability"
	"github.com/zatekoja/shiftboard/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Lookup gateway
	var gateway repositories.ShiftLookupRepository
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store, err := memory.NewShiftLookupAdapterFromFile(cfg.Store.FixturesPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.FixturesPath).Msg("Failed to load fixtures")
		}
		gateway = store
		log.Info().Str("path", cfg.Store.FixturesPath).Msg("Using in-memory fixture store")
	default:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		gateway = database.NewShiftLookupAdapter(pgClient)
	}

	// Standing cache and invalidation, only when Redis is reachable
	var eventBus *events.RedisEventBus
	var cacheInvalidationService *services.CacheInvalidationService
	if cfg.Cache.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, running without standing cache")
		} else {
			defer redisClient.Close()

			cacheProvider := cache.NewRedisAdapter(redisClient)
			gateway = database.NewCachedShiftLookupAdapter(gateway, cacheProvider, database.CacheTTL{
				Facility: cfg.Cache.FacilityTTL,
				Worker:   cfg.Cache.WorkerTTL,
			}, metrics)

			eventBus = events.NewRedisEventBus(redisClient)
			cacheInvalidationService = services.NewCacheInvalidationService(cacheProvider, eventBus)
			if err := cacheInvalidationService.Start(); err != nil {
				log.Warn().Err(err).Msg("Failed to start cache invalidation service")
				cacheInvalidationService = nil
			}
			log.Info().
				Int("facility_ttl", cfg.Cache.FacilityTTL).
				Int("worker_ttl", cfg.Cache.WorkerTTL).
				Msg("Standing cache enabled")
		}
	}

	eligibilityService := services.NewEligibilityService(gateway, metrics)
	eligibilityHandler := handlers.NewEligibilityHandler(eligibilityService)

	router := routes.NewRouter(eligibilityHandler, cfg.Server.AllowedOrigins, metrics)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("store", cfg.Store.Driver).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if cacheInvalidationService != nil {
		cacheInvalidationService.Stop()
	}
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing event bus")
		}
	}

	log.Info().Msg("Server stopped")
}
