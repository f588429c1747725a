package config

import (
	"fmt"  // For error wrapping
	"time" // For durations

	"github.com/caarlos0/env/v10" // For parsing environment variables into the struct
	"github.com/joho/godotenv"    // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppEnv           string        `env:"APP_ENV" envDefault:"development"`                // Application environment
	APIPort          string        `env:"API_PORT" envDefault:"8080"`                      // Backend (JSON API) port
	WebPort          string        `env:"WEB_PORT" envDefault:"8081"`                      // Frontend (HTML) port
	BackendURL       string        `env:"BACKEND_URL" envDefault:"http://localhost:8080"`  // Public backend origin
	FrontendURL      string        `env:"FRONTEND_URL" envDefault:"http://localhost:8081"` // Public frontend origin
	DBDriver         string        `env:"DB_DRIVER" envDefault:"sqlite"`                   // mysql, postgres or sqlite
	ConnectionString string        `env:"CONNECTION_STRING" envDefault:"fina.db"`          // Driver specific DSN
	AutoMigrate      bool          `env:"AUTO_MIGRATE" envDefault:"false"`                 // Run schema migration on startup
	DefaultUserID    string        `env:"DEFAULT_USER_ID" envDefault:"test@fina.dev"`      // Placeholder owner when no token is sent
	JWTSecret        string        `env:"JWT_SECRET"`                                      // JWT secret key, empty disables tokens
	RedisAddr        string        `env:"REDIS_ADDR"`                                      // Redis server address, empty disables caching
	RedisPass        string        `env:"REDIS_PASS"`                                      // Redis password
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`                         // Redis database number
	CacheTTL         time.Duration `env:"CACHE_TTL" envDefault:"60s"`                      // Lifetime of cached reads
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`                     // logrus level
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"text"`                    // text or json
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`               // Graceful shutdown window
}

// IsProd reports whether the application runs in production
func (c *Config) IsProd() bool {
	return c.AppEnv == "production"
}

// CacheEnabled reports whether a Redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// LoadConfig loads configuration from a .env file (if present) and environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	// Parse environment into the struct, applying defaults
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
