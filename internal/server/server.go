// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	POST /v1/layout   graph + options in, positions (and optional transform) out
//	POST /v1/fit      positions + viewport in, transform out
//	GET  /v1/layouts  registered strategy names
//	GET  /healthz     liveness
//	GET  /metrics     Prometheus metrics
//
// Errors are JSON objects of the form {"error": {"code": ..., "message": ...}}
// with the status derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/linkchart/pkg/layout"
	"github.com/matzehuels/linkchart/pkg/pipeline"
)

// DefaultMaxBodyBytes caps request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 10 << 20

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Runner       *pipeline.Runner
	Logger       *log.Logger
	Metrics      *Metrics
	Config       layout.Config // request defaults; zero means layout.DefaultConfig
	Layout       string        // default strategy name
	MaxBodyBytes int64
}

// Server serves the layout API.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	metrics *Metrics
	config  layout.Config
	layout  string
	maxBody int64
}

// New creates a server. A nil Runner gets an uncached one and a nil Metrics
// gets a fresh registry.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Runner == nil {
		opts.Runner = pipeline.NewRunner(nil, nil, opts.Logger)
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	if opts.Config == (layout.Config{}) {
		opts.Config = layout.DefaultConfig()
	}
	if opts.Layout == "" {
		opts.Layout = layout.DefaultName
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{
		runner:  opts.Runner,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		config:  opts.Config,
		layout:  opts.Layout,
		maxBody: opts.MaxBodyBytes,
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(instrument(s.logger))

	r.NotFound(s.handleNotFound)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/layouts", s.handleLayouts)
		r.Post("/layout", s.handleLayout)
		r.Post("/fit", s.handleFit)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
