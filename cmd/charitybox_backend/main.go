package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/SscSPs/charity_box_app/internal/adapters/database/memory"
	"github.com/SscSPs/charity_box_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/charity_box_app/internal/adapters/rates"
	portsrepo "github.com/SscSPs/charity_box_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/charity_box_app/internal/core/ports/services"
	"github.com/SscSPs/charity_box_app/internal/core/services"
	"github.com/SscSPs/charity_box_app/internal/handlers"
	"github.com/SscSPs/charity_box_app/internal/middleware"
	"github.com/SscSPs/charity_box_app/internal/platform/config"
	"github.com/SscSPs/charity_box_app/internal/platform/metrics"
	"github.com/SscSPs/charity_box_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Charity Box API
// @version 1.0
// @description Collection boxes, fundraising event accounts and currency settlement.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := setupRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	collector := metrics.NewCollector()
	rateSource := setupRateSource(cfg, collector, logger)
	serviceContainer := services.NewServiceContainer(cfg, repos, rateSource, collector)

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, collector, limiterInstance)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", cfg.StorageDriver),
		slog.String("rate_source", rateSource.Name()),
		slog.Bool("auth_enabled", cfg.AuthEnabled))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories opens the configured storage and applies migrations for postgres.
func setupRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// setupRateSource picks the rate source once at startup.
func setupRateSource(cfg *config.Config, collector *metrics.Collector, logger *slog.Logger) portssvc.RateSource {
	if cfg.RateSource == config.RateSourceFixed {
		return rates.NewFixedRateSource()
	}

	client := rates.NewNBPClient(cfg.NBPAPIURL, &http.Client{Timeout: cfg.RateFetchTimeout + time.Second})
	var source portssvc.RateSource = rates.NewLiveRateSource(client,
		rates.WithFetchTimeout(cfg.RateFetchTimeout),
		rates.WithLiveMetrics(collector),
	)

	if !cfg.RateCacheEnabled() {
		return source
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, rate tables will not be cached",
			slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		_ = rdb.Close()
		return source
	}
	logger.Info("Caching rate tables in redis", slog.String("addr", cfg.RedisAddr), slog.Duration("ttl", cfg.RateCacheTTL))
	return rates.NewCachedRateSource(source, rdb, cfg.RateCacheTTL)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = cfg.CORSAllowedOrigins
	return c
}
