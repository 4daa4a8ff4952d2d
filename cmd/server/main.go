package main

import (
	"context"   // context package is needed for Redis and shutdown deadlines
	"errors"    // For server close detection
	"net/http"  // HTTP server
	"os"        // Process signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"citizen_registry/internal/api"        // Custom package for API handlers
	"citizen_registry/internal/config"     // Custom package for configuration
	"citizen_registry/internal/db"         // Database connection and bootstrap
	"citizen_registry/internal/metrics"    // Prometheus metrics
	"citizen_registry/internal/middleware" // Custom package for middleware
	"citizen_registry/internal/service"    // Business services
	"citizen_registry/internal/store"      // Gorm-backed stores
	"citizen_registry/internal/utils"      // Logger setup and citizen cache

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig() // Load configuration
	utils.ConfigureLogger(cfg.IsProd, cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database and make sure the schema and admin account exist
	gdb, err := db.Open(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	defer db.Close(gdb)
	if err := db.Bootstrap(ctx, gdb, cfg.AdminPassword); err != nil {
		logrus.Fatalf("failed to initialize database: %v", err)
	}

	users := store.NewUserStore(gdb, cfg.DBOpTimeout)
	citizens := store.NewCitizenStore(gdb, cfg.DBOpTimeout)

	// Redis is optional; it backs the citizen cache and shared rate limit counters
	var redisClient *redis.Client
	var registryOpts []service.RegistryOption
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.WithError(err).Warn("Redis unreachable, continuing without it")
			_ = redisClient.Close()
			redisClient = nil
		} else {
			defer redisClient.Close()
			registryOpts = append(registryOpts, service.WithCitizenCache(utils.NewCitizenCache(redisClient, cfg.CitizenCacheTTL)))
		}
	}

	auth, err := service.NewAuthService(users, cfg.JWTSecret, service.WithTokenTTL(cfg.JWTTTL))
	if err != nil {
		logrus.Fatalf("failed to create auth service: %v", err)
	}
	registry, err := service.NewRegistryService(citizens, registryOpts...)
	if err != nil {
		logrus.Fatalf("failed to create registry service: %v", err)
	}
	stats, err := service.NewStatisticsService(citizens, nil)
	if err != nil {
		logrus.Fatalf("failed to create statistics service: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(api.Dependencies{
		Config:      cfg,
		Auth:        auth,
		Registry:    registry,
		Statistics:  stats,
		Metrics:     metrics.New(),
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow, redisClient),
		Logger:      logrus.StandardLogger(),
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		jwtStatus := "Missing"
		if cfg.JWTSecret != "" {
			jwtStatus = "Loaded"
		}
		logrus.WithFields(logrus.Fields{
			"port":        cfg.AppPort,
			"environment": cfg.AppEnv,
			"db_driver":   cfg.DBDriver,
			"redis":       redisClient != nil,
			"jwt_secret":  jwtStatus,
		}).Info("NIMC Backend running") // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logrus.Info("Shutdown signal received")
	case err := <-serverErrors:
		logrus.WithError(err).Error("HTTP server stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown failed")
	}
	logrus.Info("Server stopped")
}
