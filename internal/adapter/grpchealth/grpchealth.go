// Package grpchealth exposes model readiness over the standard gRPC health
// protocol.
package grpchealth

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// PredictionService is the health service name reported for the predictor.
const PredictionService = "diabetesai.Prediction"

// Checker reports whether predictions can be served.
type Checker interface {
	Available(ctx context.Context) bool
}

// Server is a gRPC server carrying only the health and reflection services.
type Server struct {
	grpc    *grpc.Server
	health  *health.Server
	checker Checker
}

// New creates a Server whose status follows checker.
func New(checker Checker) *Server {
	gs := grpc.NewServer()
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	s := &Server{grpc: gs, health: hs, checker: checker}
	s.set(grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return s
}

// Health returns the underlying health service.
func (s *Server) Health() grpc_health_v1.HealthServer {
	return s.health
}

// Refresh re-reads availability and publishes it for both the overall server
// and PredictionService.
func (s *Server) Refresh(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if s.checker.Available(ctx) {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.set(status)
	return status
}

// Run refreshes the status every interval until the predictor is serving or
// ctx is cancelled.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	if s.Refresh(ctx) == grpc_health_v1.HealthCheckResponse_SERVING {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if s.Refresh(ctx) == grpc_health_v1.HealthCheckResponse_SERVING {
				return
			}
		}
	}
}

// Serve accepts connections on lis until Shutdown.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Shutdown marks every service NOT_SERVING and drains open RPCs.
func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *Server) set(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(PredictionService, status)
}
