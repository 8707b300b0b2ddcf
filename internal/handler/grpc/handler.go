// Package grpc exposes the operational gRPC surface of the server: the
// standard health checking service backed by a database ping, and a unary
// interceptor that logs every call.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/utils"
)

// ServiceName is the name under which the novel hub reports its health in
// addition to the overall server status ("").
const ServiceName = "novelhub.NovelHub"

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	pinger Pinger
	health *health.Server

	traceIDGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until the first successful [Handler.CheckHealth].
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		pinger:           pinger,
		health:           health.NewServer(),
		traceIDGenerator: utils.NewUUIDGenerator(),
		logger:           logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to srv.
func (h *Handler) Register(srv grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// CheckHealth pings the database once and publishes the result.
func (h *Handler) CheckHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	servingStatus := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Err(err).Msg("database ping failed")
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(servingStatus)
	return servingStatus
}

// WatchHealth re-checks the database every interval until ctx is done, after
// which all services are reported as NOT_SERVING for good.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	h.CheckHealth(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.CheckHealth(ctx)
		}
	}
}

func (h *Handler) setStatus(servingStatus healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", servingStatus)
	h.health.SetServingStatus(ServiceName, servingStatus)
}

// UnaryLoggingInterceptor attaches a trace-scoped logger to the call context
// and logs the method, resulting code and duration.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := &logger.Logger{Logger: h.logger.With().Str("trace_id", h.traceIDGenerator.Generate()).Logger()}
	ctx = log.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
