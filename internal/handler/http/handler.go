package http

import (
	"time"

	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
