// Command migrate applies the embedded database migrations and exits.
//
// Usage:
//
//	migrate
//
// Uses the same configuration as the server.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yoruba-science-backend/internal/app"
	"github.com/heartmarshall/yoruba-science-backend/internal/config"
	"github.com/heartmarshall/yoruba-science-backend/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
