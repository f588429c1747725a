package main

import (
	"context"   // Shutdown coordination
	"errors"    // Error inspection
	"net/http"  // HTTP servers
	"os"        // Process signals
	"os/signal" // Signal handling
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"fina/internal/api"     // Custom package for API endpoints
	"fina/internal/config"  // Custom package for configuration
	"fina/internal/db"      // Custom package for persistence
	"fina/internal/handler" // Custom package for handlers
	"fina/internal/utils"   // Cache utilities
	"fina/internal/web"     // Custom package for the front-end

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"golang.org/x/sync/errgroup"   // Running both servers together
)

// Main function to set up and run the API and front-end servers
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	setupLogger(cfg) // Setup logger

	// Connect to the database selected by DB_DRIVER
	gormDB, err := db.Open(cfg.DBDriver, cfg.ConnectionString)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	// Create the schema when asked to
	if cfg.AutoMigrate {
		if err := db.Migrate(gormDB); err != nil {
			logrus.Fatalf("failed to migrate DB: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := setupCache(ctx, cfg) // Optional Redis cache, nil when disabled

	// Set Mode to Release if in production
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	categories := handler.NewCategoryHandler(gormDB, cache)      // Category operations
	transactions := handler.NewTransactionHandler(gormDB, cache) // Transaction operations

	apiRouter := api.NewRouter(cfg, categories, transactions) // Backend routes
	// Set trusted proxies for Gin
	if err := apiRouter.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	webRouter, err := web.NewRouter(categories, cfg.DefaultUserID) // Front-end pages
	if err != nil {
		logrus.Fatalf("failed to build front-end: %v", err)
	}

	servers := []*http.Server{
		{Addr: ":" + cfg.APIPort, Handler: apiRouter, ReadHeaderTimeout: 5 * time.Second},
		{Addr: ":" + cfg.WebPort, Handler: webRouter, ReadHeaderTimeout: 5 * time.Second},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logrus.Info("Server running on " + srv.Addr) // Log server start
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	// Shut every server down once a signal arrives or one of them fails
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		logrus.Fatalf("server stopped with error: %v", err)
	}
	logrus.Info("Server stopped")
}

// setupLogger applies the configured format and level to logrus
func setupLogger(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// setupCache connects to Redis when configured; nil disables caching
func setupCache(ctx context.Context, cfg *config.Config) *utils.Cache {
	if !cfg.CacheEnabled() {
		return nil
	}
	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	// Test Redis connection
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	return utils.NewCache(redisClient, cfg.CacheTTL)
}
