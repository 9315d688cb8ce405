package healthapi

import (
	grpctr "github.com/10Narratives/workflows/internal/transport/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// NewRegistration reports every named service as serving.
func NewRegistration(services ...string) grpctr.ServiceRegistration {
	healthServer := health.NewServer()
	for _, service := range services {
		healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	return func(s *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(s, healthServer)
	}
}
