package main

import (
	"fina/internal/config" // Custom import path (Config)
	"fina/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for migration
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Open a connection to the configured database
	gormDB, err := db.Open(cfg.DBDriver, cfg.ConnectionString)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("%v", err)
	}
}
