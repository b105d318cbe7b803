package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probed by orchestrators, next to the overall "" status.
const ServiceName = "chat-presence"

// HealthServer exposes the standard gRPC health protocol for the presence node.
// It starts NOT_SERVING and flips to SERVING once every dependency is wired.
type HealthServer struct {
	log    *slog.Logger
	server *grpc.Server
	health *health.Server
}

func NewHealthServer(log *slog.Logger) *HealthServer {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(log)))
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)

	hs := &HealthServer{log: log, server: s, health: h}
	hs.SetServing(false)
	return hs
}

// Serve blocks until Stop is called.
func (h *HealthServer) Serve(listener net.Listener) error {
	h.log.Info("Starting gRPC health server", "address", listener.Addr().String())
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server error: %w", err)
	}
	return nil
}

func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Check reports the current status of the presence service without a network round trip.
func (h *HealthServer) Check(ctx context.Context) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Stop marks the node NOT_SERVING, then drains in-flight calls.
func (h *HealthServer) Stop() {
	h.health.Shutdown()
	h.server.GracefulStop()
}
