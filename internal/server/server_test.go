package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/handler"
	myGRPC "github.com/MKhiriev/go-novel-hub/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-novel-hub/internal/handler/http"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/service"
)

type nopPinger struct{}

func (nopPinger) PingContext(context.Context) error { return nil }

// freeAddress returns a loopback address that was free a moment ago.
func freeAddress(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCPortBusy(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nopPinger{}, logger.Nop())}
	_, err = NewServer(handlers, config.Server{GRPCAddress: l.Addr().String()}, logger.Nop())

	assert.Error(t, err)
}

func TestServer_RunAndShutdown(t *testing.T) {
	log := logger.Nop()
	cfg := config.Server{
		HTTPAddress: freeAddress(t),
		GRPCAddress: "127.0.0.1:0",
	}
	services := &service.Services{AppInfoService: stubAppInfo{}}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, time.Second, log),
		GRPC: myGRPC.NewHandler(nopPinger{}, log),
	}

	srv, err := NewServer(handlers, cfg, log)
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/api/version/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	assert.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + cfg.HTTPAddress + "/api/version/")
	assert.Error(t, err)
}

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "test" }
