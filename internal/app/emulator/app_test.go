package emulatorapp_test

import (
	"context"
	"net"
	"testing"
	"time"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	emulatorapp "github.com/10Narratives/workflows/internal/app/emulator"
	grpctr "github.com/10Narratives/workflows/internal/transport/grpc"
	opapi "github.com/10Narratives/workflows/internal/transport/grpc/api/operations"
	tmplapi "github.com/10Narratives/workflows/internal/transport/grpc/api/templates"
	configutils "github.com/10Narratives/workflows/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startApp(t *testing.T, cfg *emulatorapp.Config) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	app, err := emulatorapp.NewApp(cfg, zap.NewNop(), grpctr.WithListener(lis))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- app.Startup(ctx) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, conn.Close())
		cancel()
		require.NoError(t, <-stopped)
		require.NoError(t, app.Shutdown(context.Background()))
	})

	return conn
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := configutils.ReadFromEnv[emulatorapp.Config]()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:8086", cfg.Server.Grpc.Address)
	require.True(t, cfg.Server.Grpc.Reflection)
	require.Equal(t, 100*time.Millisecond, cfg.Operations.WaitInterval)
}

func TestApp_Health(t *testing.T) {
	conn := startApp(t, &emulatorapp.Config{})
	client := grpc_health_v1.NewHealthClient(conn)

	for _, service := range []string{
		tmplapi.ServiceName,
		opapi.ServiceName,
	} {
		res, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, res.GetStatus(), service)
	}
}

func TestApp_Reflection(t *testing.T) {
	listServices := func(t *testing.T, conn *grpc.ClientConn) ([]string, error) {
		stream, err := grpc_reflection_v1.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
		require.NoError(t, err)

		// Send reports io.EOF when the server already closed the stream; the
		// status is read by Recv.
		_ = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
			MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_ListServices{ListServices: "*"},
		})

		res, err := stream.Recv()
		if err != nil {
			return nil, err
		}

		var names []string
		for _, service := range res.GetListServicesResponse().GetService() {
			names = append(names, service.GetName())
		}
		return names, nil
	}

	t.Run("enabled", func(t *testing.T) {
		cfg := &emulatorapp.Config{}
		cfg.Server.Grpc.Reflection = true

		names, err := listServices(t, startApp(t, cfg))
		require.NoError(t, err)
		require.Contains(t, names, tmplapi.ServiceName)
		require.Contains(t, names, opapi.ServiceName)
	})

	t.Run("disabled", func(t *testing.T) {
		_, err := listServices(t, startApp(t, &emulatorapp.Config{}))
		require.Equal(t, codes.Unimplemented, status.Code(err))
	})
}

func TestApp_Templates(t *testing.T) {
	conn := startApp(t, &emulatorapp.Config{})

	_, err := dataprocpb.NewWorkflowTemplateServiceClient(conn).GetWorkflowTemplate(context.Background(), &dataprocpb.GetWorkflowTemplateRequest{
		Name: "projects/p/regions/r/workflowTemplates/missing",
	})
	require.Equal(t, codes.NotFound, status.Code(err))
}
