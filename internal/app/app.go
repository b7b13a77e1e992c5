package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/article"
	topicrepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/topic"
	userrepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yoruba-science-backend/internal/auth"
	"github.com/heartmarshall/yoruba-science-backend/internal/config"
	"github.com/heartmarshall/yoruba-science-backend/internal/metrics"
	articlesvc "github.com/heartmarshall/yoruba-science-backend/internal/service/article"
	authsvc "github.com/heartmarshall/yoruba-science-backend/internal/service/auth"
	topicsvc "github.com/heartmarshall/yoruba-science-backend/internal/service/topic"
	usersvc "github.com/heartmarshall/yoruba-science-backend/internal/service/user"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/dataloader"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/middleware"
	"github.com/heartmarshall/yoruba-science-backend/internal/transport/rest"
	"github.com/heartmarshall/yoruba-science-backend/migrations"
)

// rateLimitCleanup is how often idle login buckets are dropped.
const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("environment", cfg.Server.Environment),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, pool, limiter, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// NewHandler wires repositories, services and transport into the root
// HTTP handler. The login endpoint is limited through limiter.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	// Repositories
	users := userrepo.New(pool)
	topics := topicrepo.New(pool)
	articles := articlerepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Services
	m := metrics.New()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	authService := authsvc.NewService(logger, users, tokens, m, cfg.Auth)
	articleService := articlesvc.NewService(logger, articles, topics, m, cfg.Content)
	topicService := topicsvc.NewService(logger, topics, articles, txm, cfg.Content)
	userService := usersvc.NewService(logger, users, articles, topics)

	// Transport
	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, Version, cfg.Server.Environment),
		Auth:    rest.NewAuthHandler(authService, logger),
		Article: rest.NewArticleHandler(articleService, logger),
		Topic:   rest.NewTopicHandler(topicService, logger),
		Admin:   rest.NewAdminHandler(userService, articleService, authService, logger),
		Metrics: m.Handler(),
	}, middleware.NewAuthenticator(authService, logger), limiter.Limit(cfg.Auth.LoginRateLimit))

	// Metrics must wrap the mux directly so it sees the matched pattern.
	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		dataloader.Middleware(&dataloader.Repos{User: users, Topic: topics}),
		middleware.Metrics(m),
	)
	return chain(mux)
}
