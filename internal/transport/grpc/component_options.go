package grpctr

import (
	"net"

	"google.golang.org/grpc"
)

type ServiceRegistration func(s *grpc.Server)

type componentOptions struct {
	serverOptions []grpc.ServerOption
	serviceRegs   []ServiceRegistration
	listener      net.Listener
}

type ComponentOption func(co *componentOptions)

func defaultComponentOptions() *componentOptions {
	return &componentOptions{}
}

func WithServerOptions(options ...grpc.ServerOption) ComponentOption {
	return func(co *componentOptions) {
		co.serverOptions = append(co.serverOptions, options...)
	}
}

func WithServiceRegistration(regs ...ServiceRegistration) ComponentOption {
	return func(co *componentOptions) {
		co.serviceRegs = append(co.serviceRegs, regs...)
	}
}

// WithListener serves on lis instead of listening on the component address.
func WithListener(lis net.Listener) ComponentOption {
	return func(co *componentOptions) {
		co.listener = lis
	}
}
