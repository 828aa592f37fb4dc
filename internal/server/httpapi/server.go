// Package httpapi exposes the grievance workflow over HTTP for browser and
// script clients.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/catalog"
	"github.com/dmitrijs2005/grievdesk/internal/logging"
	"github.com/dmitrijs2005/grievdesk/internal/server/models"
	"github.com/dmitrijs2005/grievdesk/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	maxBodyBytes   = 1 << 20
	requestTimeout = 30 * time.Second
)

type identitySvc interface {
	Login(ctx context.Context, raw string) (*services.LoginResult, error)
	Session(token string) (models.Session, error)
}

type grievanceSvc interface {
	Submit(ctx context.Context, session models.Session, form models.Form) (*services.Submission, error)
}

type catalogSvc interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

type Server struct {
	address    string
	identity   identitySvc
	grievances grievanceSvc
	catalogs   catalogSvc
	metrics    http.Handler
	logger     logging.Logger
}

// NewServer builds the HTTP server. metricsHandler may be nil, in which case
// /metrics is not mounted.
func NewServer(address string, l logging.Logger, identity identitySvc, grievances grievanceSvc,
	catalogs catalogSvc, metricsHandler http.Handler) *Server {
	return &Server{
		address:    address,
		identity:   identity,
		grievances: grievances,
		catalogs:   catalogs,
		metrics:    metricsHandler,
		logger:     l.With("module", "http_server"),
	}
}

// Router returns the chi router with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Post("/login", s.handleLogin)
		r.Get("/catalog", s.handleCatalog)
		r.Post("/grievances", s.handleSubmit)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
