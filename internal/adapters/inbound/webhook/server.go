// Package webhook serves the admission endpoints for pods and WebApps over
// HTTPS.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Config holds the listener settings of the webhook server.
type Config struct {
	Port     string
	CertFile string
	KeyFile  string
}

type Server struct {
	logger     *slog.Logger
	cfg        Config
	deleter    instanceDeleter
	server     *http.Server
	ready      chan struct{}
	inShutdown atomic.Bool
}

// New creates a new admission webhook server.
func New(logger *slog.Logger, cfg Config, deleter instanceDeleter) *Server {
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	return &Server{
		logger:  logger.With("component", "webhook-server"),
		cfg:     cfg,
		deleter: deleter,
		ready:   make(chan struct{}),
	}
}

// Name returns the name of the webhook server component
func (s *Server) Name() string {
	return "webhook-server"
}

// Handler returns the router serving every admission endpoint.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Post(PathMutatePods, s.serve("mutate-pods", s.mutatePod))
	router.Post(PathValidatePods, s.serve("validate-pods", s.validatePod))
	router.Post(PathValidateWebApps, s.serve("validate-webapps", s.validateWebApp))
	router.Post(PathMutateWebApps, s.serve("mutate-webapps", s.mutateWebApp))

	return router
}

// Start listens on the configured port and serves TLS in a goroutine.
func (s *Server) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "webhook server is shutting down, skipping start")

		return nil
	}

	if s.cfg.CertFile == "" || s.cfg.KeyFile == "" {
		return ErrTLSNotConfigured
	}

	addr := ":" + s.cfg.Port
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{
			Enable: true,
		},
	}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen webhook tcp: %w", err)
	}

	s.logger.InfoContext(ctx, "webhook server listening", "addr", listener.Addr().String())

	go func() {
		close(s.ready)

		err := s.server.ServeTLS(listener, s.cfg.CertFile, s.cfg.KeyFile)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "webhook server error", "reason", err)
		}
	}()

	return nil
}

// Ready returns a channel that is closed when the webhook server is ready.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Ping returns nil when the server is ready to serve.
func (s *Server) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("webhook server is not ready")
	}
}

// Shutdown gracefully shuts down the webhook server.
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "webhook server is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down webhook server")

	if s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("webhook server shutdown: %w", err)
	}

	s.logger.InfoContext(ctx, "webhook server closed properly")

	return nil
}
