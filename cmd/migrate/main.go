package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/devportfolio/portfolio-api/config"
	"github.com/devportfolio/portfolio-api/pkg/db"
	"github.com/devportfolio/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration instead of applying them")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		ServiceName: "portfolio-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	direction := db.Up
	if *down {
		direction = db.Down
	}

	logger.Info("Starting database migrations",
		zap.String("database", maskDatabaseURL(cfg.Database.URL)),
		zap.String("source", cfg.Database.MigrationsPath),
		zap.String("direction", string(direction)))

	poolCfg := db.PoolConfig{URL: cfg.Database.URL, CACertPath: cfg.Database.CACertPath}
	if err := db.RunMigrations(poolCfg, cfg.Database.MigrationsPath, direction); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL hides the password in a database URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	return u.Redacted()
}
