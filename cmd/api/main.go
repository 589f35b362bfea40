package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"blog-backend/internal/common/pagination"
	pgRepo "blog-backend/internal/infra/adapter/persistence/postgres"
	"blog-backend/internal/infra/db"
	"blog-backend/internal/observability/logging"
	"blog-backend/pkg/config"

	artUC "blog-backend/internal/usecase/article"
	taxUC "blog-backend/internal/usecase/taxonomy"

	hhttp "blog-backend/internal/handler/http"
	harticle "blog-backend/internal/handler/http/article"
	"blog-backend/internal/handler/http/middleware"
	"blog-backend/internal/handler/http/requestid"
	htaxonomy "blog-backend/internal/handler/http/taxonomy"
)

func main() {
	logger := initLogger()
	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}
	taxSvc := &taxUC.Service{Repo: pgRepo.NewArticleRepo(database)}

	handler := setupServer(logger, database, version, artSvc, taxSvc)

	runServer(logger, handler, artSvc, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection, runs migrations and optionally
// seeds initial data.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	if config.GetEnvBool("DB_SEED", false) {
		if err := db.SeedArticles(database); err != nil {
			logger.Error("failed to seed database", slog.Any("error", err))
			os.Exit(1)
		}
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer registers all routes and wraps them in the middleware chain.
func setupServer(logger *slog.Logger, database *sql.DB, version string, artSvc *artUC.Service, taxSvc *taxUC.Service) http.Handler {
	mux := http.NewServeMux()

	// ヘルスチェックエンドポイント
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())

	paginationCfg := pagination.LoadFromEnv()

	harticle.Register(mux, artSvc, logger, paginationCfg)
	htaxonomy.Register(mux, taxSvc, logger)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS → Request ID → Recovery → Logging → Body Limit → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Any("allowed_headers", corsConfig.AllowedHeaders),
		slog.Int("max_age", corsConfig.MaxAge))

	// Apply in reverse order (innermost to outermost)
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, artSvc *artUC.Service, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// articles_total ゲージを定期更新
	go refreshArticlesTotal(ctx, logger, artSvc)

	addr := ":" + config.GetEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// refreshArticlesTotal periodically refreshes the articles_total gauge.
func refreshArticlesTotal(ctx context.Context, logger *slog.Logger, artSvc *artUC.Service) {
	interval := config.GetEnvDuration("METRICS_REFRESH_INTERVAL", 1*time.Minute)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	update := func() {
		countCtx, countCancel := context.WithTimeout(ctx, 10*time.Second)
		defer countCancel()
		total, err := artSvc.CountAll(countCtx)
		if err != nil {
			logger.Warn("failed to refresh articles_total", slog.Any("error", err))
			return
		}
		hhttp.UpdateArticlesTotal(total)
	}

	update()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			update()
		}
	}
}
