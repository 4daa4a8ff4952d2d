package main

import (
	"context" // Bootstrap deadline
	"time"    // Timeout duration

	"citizen_registry/internal/config" // Custom import path (Config)
	"citizen_registry/internal/db"     // Custom import path (Database)
	"citizen_registry/internal/utils"  // Logger setup

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig()                      // Load configuration
	utils.ConfigureLogger(cfg.IsProd, cfg.LogLevel) // Setup logger

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gdb, err := db.Open(ctx, cfg) // Connect using the configured driver
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	defer db.Close(gdb)

	// Create tables and seed the default administrator
	if err := db.Bootstrap(ctx, gdb, cfg.AdminPassword); err != nil {
		logrus.Fatalf("bootstrap failed: %v", err)
	}
}
