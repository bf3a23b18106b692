package server

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-login-flow/internal/config"
	"github.com/MKhiriev/go-login-flow/internal/logger"
)

// Server runs the development auth HTTP server.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// New builds a [Server] listening on the configured address with the given
// handler's routes mounted.
func New(cfg *config.ServerConfig, handler *Handler, logger *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler.Init(),
		},
		logger: logger,
	}
}

// Run starts serving and blocks until the listener fails or Shutdown is
// called.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.server.Addr).Msg("http server listening")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

// Shutdown gracefully stops the server, waiting up to the given timeout for
// in-flight requests to drain.
func (s *Server) Shutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("http server shutdown")
	}
}
