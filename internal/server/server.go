package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/handler"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
)

type server struct {
	httpServer *httpServer
	background Background
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, background Background, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// HTTP first, then workers
	s.httpServer.Shutdown()

	if s.background != nil {
		s.background.Stop()
	}
}

// run serves until ctx is done, then shuts everything down.
func (s *server) run(ctx context.Context) {
	if s.background != nil {
		s.logger.Info().Msg("starting background workers")
		s.background.Run(ctx)
	}

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.logger.Info().Msg("Launching HTTP server")
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
	case <-served:
		s.logger.Warn().Msg("HTTP server stopped on its own")
	}

	s.Shutdown()
	<-served

	s.logger.Info().Msg("server Shutdown gracefully")
}
