// Command seeder bootstraps a fresh database with the administrator account
// (ADMIN_EMAIL / ADMIN_PASSWORD) and the starter topics. Existing data is
// left untouched, so it is safe to run repeatedly.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        report what would be created without writing
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/article"
	topicrepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yoruba-science-backend/internal/app"
	"github.com/heartmarshall/yoruba-science-backend/internal/app/seeder"
	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/config"
	"github.com/heartmarshall/yoruba-science-backend/internal/metrics"
	authsvc "github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	topicsvc "github.com/heartmarshall/yoruba-science-backend/internal/service/topic"
	"github.com/heartmarshall/yoruba-science-backend/migrations"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	users := userrepo.New(pool)
	topics := topicrepo.New(pool)
	tokens := auth.NewTokenManager(appCfg.Auth.JWTSecret, appCfg.Auth.JWTIssuer, appCfg.Auth.TokenTTL)
	m := metrics.New()

	authService := authsvc.NewService(logger, users, tokens, m, appCfg.Auth)
	topicService := topicsvc.NewService(logger, topics, articlerepo.New(pool), postgres.NewTxManager(pool), appCfg.Content)

	pipeline := seeder.NewPipeline(logger, authService, topicService, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed successfully")
}
