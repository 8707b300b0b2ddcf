package http

import (
	"time"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/service"
	"github.com/MKhiriev/go-novel-hub/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request context; zero disables the limit.
	requestTimeout time.Duration

	traceIDGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		requestTimeout:   requestTimeout,
		traceIDGenerator: utils.NewUUIDGenerator(),
		logger:           logger,
	}
}
