package validator_test

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"github.com/10Narratives/workflows/internal/transport/grpc/interceptors/validator"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type checkedRequest struct {
	err error
}

func (r checkedRequest) Validate() error {
	return r.err
}

func TestNewUnaryServerInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/google.cloud.dataproc.v1.WorkflowTemplateService/GetWorkflowTemplate"}
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	tests := []struct {
		name     string
		req      any
		wantCode codes.Code
		wantLogs int
	}{
		{name: "valid", req: checkedRequest{}, wantCode: codes.OK},
		{name: "invalid", req: checkedRequest{err: errors.New("name is required")}, wantCode: codes.InvalidArgument, wantLogs: 1},
		{name: "no validate method", req: struct{}{}, wantCode: codes.OK},
		{name: "dataproc request passes through", req: &dataprocpb.GetWorkflowTemplateRequest{}, wantCode: codes.OK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			interceptor := validator.NewUnaryServerInterceptor(zap.New(core))

			_, err := interceptor(context.Background(), tt.req, info, handler)
			require.Equal(t, tt.wantCode, status.Code(err))
			require.Equal(t, tt.wantLogs, logs.Len())
		})
	}
}
