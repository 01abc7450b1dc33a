// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

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
	"github.com/taibuivan/gumruk/internal/platform/middleware"
	"github.com/taibuivan/gumruk/internal/users/account"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler; always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 200 when postgres and redis answer.
	Readiness http.HandlerFunc

	// Metrics serves the prometheus registry at /metrics.
	Metrics http.Handler

	// Media serves locally stored files. Nil when objects live in S3.
	Media http.Handler

	Auth    *auth.Handler
	Account *account.Handler

	Violation *violation.Handler
	Report    *report.Handler
	Goods     *goods.Handler
	Task      *task.Handler
	Export    *export.Handler

	// Reference data
	Lookup  *lookup.Handler
	Geo     *geo.Handler
	Office  *office.Handler
	Officer *officer.Handler
	Product *product.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter sweeper stops with context.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, observer middleware.RequestObserver, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Metrics(observer))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}
	if h.Media != nil {
		prefix := "/" + strings.Trim(cfg.StoragePublicURL, "/")
		r.Method(http.MethodGet, prefix+"/*", http.StripPrefix(prefix, h.Media))
	}

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Account.Routes())

		api.Mount("/violations", h.Violation.Routes())
		api.Mount("/reports", h.Report.Routes())
		api.Mount("/persons", h.Report.PersonRoutes())
		api.Mount("/stored-goods", h.Goods.GoodRoutes())
		api.Mount("/stored-good-images", h.Goods.ImageRoutes())
		api.Mount("/assigned-tasks", h.Task.TaskRoutes())
		api.Mount("/assigned-letters", h.Task.LetterRoutes())
		api.Mount("/investigation-results", h.Task.ResultRoutes())
		api.Mount("/exports", h.Export.Routes())

		api.Mount("/lookups", h.Lookup.Routes())
		api.Mount("/countries", h.Geo.CountryRoutes())
		api.Mount("/cities", h.Geo.CityRoutes())
		api.Mount("/customs-offices", h.Office.OfficeRoutes())
		api.Mount("/customs-points", h.Office.PointRoutes())
		api.Mount("/customs-officers", h.Officer.Routes())
		api.Mount("/products", h.Product.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the root router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
