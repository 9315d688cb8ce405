package reflectapi

import (
	grpctr "github.com/10Narratives/workflows/internal/transport/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// NewRegistration exposes server reflection so that tools like grpcurl can
// call the emulator without local protos. Nothing is registered when the
// emulator runs with reflection turned off.
func NewRegistration(enabled bool) grpctr.ServiceRegistration {
	return func(s *grpc.Server) {
		if enabled {
			reflection.Register(s)
		}
	}
}
