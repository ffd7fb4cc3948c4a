package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health service name reported next to the overall "" entry.
const ServiceName = "safeon.admin.v1.AdminService"

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker mirrors database reachability into the gRPC health service.
type HealthChecker struct {
	server   *health.Server
	db       Pinger
	interval time.Duration
	log      *logrus.Logger
}

// NewServer builds a gRPC server exposing health and reflection.
func NewServer(db Pinger, interval time.Duration, logger *logrus.Logger) (*grpc.Server, *HealthChecker) {
	grpcServer := grpc.NewServer()

	checker := &HealthChecker{
		server:   health.NewServer(),
		db:       db,
		interval: interval,
		log:      logger,
	}
	healthpb.RegisterHealthServer(grpcServer, checker.server)
	reflection.Register(grpcServer)
	logger.Info("gRPC health and reflection services registered")

	return grpcServer, checker
}

// Check pings the database once and updates the serving status.
func (h *HealthChecker) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(ctx); err != nil {
		h.log.Warnf("gRPC health: database unreachable: %v", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
	return status
}

// Run checks immediately and then every interval until ctx is done, when it
// marks everything NOT_SERVING.
func (h *HealthChecker) Run(ctx context.Context) {
	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

func (h *HealthChecker) Server() *health.Server { return h.server }
