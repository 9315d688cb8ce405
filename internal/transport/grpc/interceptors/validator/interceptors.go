package validator

import (
	"context"

	v "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/validator"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

// NewUnaryServerInterceptor rejects requests whose Validate method fails
// with codes.InvalidArgument. Requests without Validate pass through, which
// today covers every dataproc and longrunning message the emulator serves.
func NewUnaryServerInterceptor(log *zap.Logger, opts ...v.Option) grpc.UnaryServerInterceptor {
	return v.UnaryServerInterceptor(withLogging(log, opts)...)
}

func NewStreamServerInterceptor(log *zap.Logger, opts ...v.Option) grpc.StreamServerInterceptor {
	return v.StreamServerInterceptor(withLogging(log, opts)...)
}

func withLogging(log *zap.Logger, opts []v.Option) []v.Option {
	if log == nil {
		return opts
	}
	return append([]v.Option{
		v.WithOnValidationErrCallback(func(ctx context.Context, err error) {
			log.Debug("request rejected", zap.Error(err))
		}),
	}, opts...)
}
