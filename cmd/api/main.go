// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Gumruk HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and Redis.
//  4. Run database migrations (idempotent).
//  5. Open document storage and the metrics registry.
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/gumruk/internal/api"
	"github.com/taibuivan/gumruk/internal/core/export"
	"github.com/taibuivan/gumruk/internal/core/geo"
	"github.com/taibuivan/gumruk/internal/core/goods"
	"github.com/taibuivan/gumruk/internal/core/lookup"
	"github.com/taibuivan/gumruk/internal/core/office"
	"github.com/taibuivan/gumruk/internal/core/officer"
	"github.com/taibuivan/gumruk/internal/core/product"
	"github.com/taibuivan/gumruk/internal/core/report"
	"github.com/taibuivan/gumruk/internal/core/task"
	"github.com/taibuivan/gumruk/internal/core/violation"
	"github.com/taibuivan/gumruk/internal/platform/config"
	"github.com/taibuivan/gumruk/internal/platform/constants"
	"github.com/taibuivan/gumruk/internal/platform/metrics"
	"github.com/taibuivan/gumruk/internal/platform/migration"
	pgstore "github.com/taibuivan/gumruk/internal/platform/postgres"
	redisstore "github.com/taibuivan/gumruk/internal/platform/redis"
	"github.com/taibuivan/gumruk/internal/platform/sec"
	"github.com/taibuivan/gumruk/internal/platform/storage"
	"github.com/taibuivan/gumruk/internal/users/account"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	level := new(slog.LevelVar)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "gumruk"))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		level.Set(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
	)

	// Startup deadline so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives until shutdown; stops background sweepers.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL & Redis ─────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_pool_closing")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("redis_client_closing")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Storage, Metrics, Tokens ───────────────────────────────────────
	files, err := storage.New(startupCtx, cfg)
	must(log, err, "open storage")

	var media http.Handler
	if local, ok := files.(*storage.Local); ok {
		media = http.FileServer(http.Dir(local.Root()))
	}

	registry := metrics.New()

	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	var health api.HealthDependencies
	health.Add("postgres", func(context context.Context) error { return pgstore.Ping(context, pool) })
	health.Add("redis", func(context context.Context) error { return redisstore.Ping(context, rdb) })
	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(auth.NewUserRepository(pool), auth.NewSessionStore(rdb), jwtSvc, log)
	accountService := account.NewService(account.NewPostgresRepository(pool), log)

	reportRepository := report.NewPostgresRepository(pool)
	guard := report.NewGuard(reportRepository, accountService)
	reportService := report.NewService(reportRepository, guard, files, registry, cfg.ExportLocation(), log)

	goodsService := goods.NewService(goods.NewPostgresRepository(pool), guard, files, registry, log)
	taskService := task.NewService(task.NewPostgresRepository(pool), guard, files, registry, log)
	exportService := export.NewService(export.NewPostgresRepository(pool), registry, cfg.ExportLocation(), log)

	lookupCache := lookup.NewRedisCache(rdb, cfg.LookupCacheTTL)
	lookupService := lookup.NewService(lookup.NewPostgresRepository(pool), lookupCache, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   registry.Handler(),
		Media:     media,

		Auth:    auth.NewHandler(authService),
		Account: account.NewHandler(accountService),

		Violation: violation.NewHandler(violation.NewService(violation.NewPostgresRepository(pool), log)),
		Report:    report.NewHandler(reportService),
		Goods:     goods.NewHandler(goodsService),
		Task:      task.NewHandler(taskService),
		Export:    export.NewHandler(exportService),

		Lookup:  lookup.NewHandler(lookupService),
		Geo:     geo.NewHandler(geo.NewService(geo.NewPostgresRepository(pool), log)),
		Office:  office.NewHandler(office.NewService(office.NewPostgresRepository(pool), log)),
		Officer: officer.NewHandler(officer.NewService(officer.NewPostgresRepository(pool), log)),
		Product: product.NewHandler(product.NewService(product.NewPostgresRepository(pool), log)),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appCtx, cfg, log, jwtSvc, registry, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// Startup wiring only. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
