package recovery

import (
	"context"
	"fmt"

	r "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func NewUnaryServerInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return r.UnaryServerInterceptor(r.WithRecoveryHandlerContext(handler(log)))
}

func NewStreamServerInterceptor(log *zap.Logger) grpc.StreamServerInterceptor {
	return r.StreamServerInterceptor(r.WithRecoveryHandlerContext(handler(log)))
}

func handler(log *zap.Logger) r.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		log.Error("recovered from panic", zap.String("panic", fmt.Sprint(p)), zap.Stack("stack"))
		return status.Error(codes.Internal, "internal error")
	}
}
