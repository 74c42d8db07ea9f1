package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ryalynne/hrms/internal/bootstrap"
	"github.com/ryalynne/hrms/internal/config"
	"github.com/ryalynne/hrms/internal/db"
	"github.com/ryalynne/hrms/internal/pkg/helpers"
)

// Server owns the HTTP listener and the database pool behind it.
type Server struct {
	config   *config.Config
	database *db.PostgresDB
	logger   zerolog.Logger
	http     *http.Server
}

// NewServer connects to the database, builds every dependency and mounts the
// routes.
func NewServer(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Server, error) {
	database, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, database, lgr)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return New(cfg, bootstrap.SetupRouter(cfg, deps, lgr), database, lgr), nil
}

// New wraps an already configured router. database may be nil.
func New(cfg *config.Config, router *gin.Engine, database *db.PostgresDB, lgr zerolog.Logger) *Server {
	return &Server{
		config:   cfg,
		database: database,
		logger:   lgr,
		http: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  helpers.ParseDuration(cfg.Server.ReadTimeout, 10*time.Second),
			WriteTimeout: helpers.ParseDuration(cfg.Server.WriteTimeout, 30*time.Second),
			IdleTimeout:  helpers.ParseDuration(cfg.Server.IdleTimeout, 120*time.Second),
		},
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		s.closeDatabase()
		return fmt.Errorf("error starting server: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run over a caller-provided listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", listener.Addr().String()).Msg("HTTP server listening")
		serverErrors <- s.http.Serve(listener)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closeDatabase()
			return fmt.Errorf("error serving HTTP: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second))
	defer cancel()

	s.logger.Info().Msg("Shutting down HTTP server...")
	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	s.closeDatabase()

	s.logger.Info().Msg("Server shutdown process complete.")
	if err != nil {
		return fmt.Errorf("server shutdown completed with errors: %w", err)
	}
	return nil
}

func (s *Server) closeDatabase() {
	if s.database != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		s.database.Close()
		s.database = nil
	}
}
