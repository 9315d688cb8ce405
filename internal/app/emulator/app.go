package emulatorapp

import (
	"context"

	oprepo "github.com/10Narratives/workflows/internal/repositories/operations"
	tmplrepo "github.com/10Narratives/workflows/internal/repositories/templates"
	opsrv "github.com/10Narratives/workflows/internal/services/operations"
	tmplsrv "github.com/10Narratives/workflows/internal/services/templates"
	grpctr "github.com/10Narratives/workflows/internal/transport/grpc"
	opapi "github.com/10Narratives/workflows/internal/transport/grpc/api/operations"
	tmplapi "github.com/10Narratives/workflows/internal/transport/grpc/api/templates"
	healthapi "github.com/10Narratives/workflows/internal/transport/grpc/health"
	"github.com/10Narratives/workflows/internal/transport/grpc/interceptors/logging"
	"github.com/10Narratives/workflows/internal/transport/grpc/interceptors/recovery"
	"github.com/10Narratives/workflows/internal/transport/grpc/interceptors/validator"
	reflectapi "github.com/10Narratives/workflows/internal/transport/grpc/reflection"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type App struct {
	cfg *Config
	log *zap.Logger

	grpcServer *grpctr.Component
}

func NewApp(cfg *Config, log *zap.Logger, opts ...grpctr.ComponentOption) (*App, error) {
	operationRepository := oprepo.NewRepository()
	templateRepository := tmplrepo.NewRepository()

	operationService, err := opsrv.NewService(operationRepository,
		opsrv.WithLogger(log.Named("operations")),
		opsrv.WithWaitInterval(cfg.Operations.WaitInterval),
	)
	if err != nil {
		return nil, err
	}

	templateService, err := tmplsrv.NewService(templateRepository, operationRepository, log.Named("templates"))
	if err != nil {
		return nil, err
	}

	opts = append([]grpctr.ComponentOption{
		grpctr.WithServerOptions(
			grpc.ChainUnaryInterceptor(
				recovery.NewUnaryServerInterceptor(log),
				logging.NewUnaryServerInterceptor(log),
				validator.NewUnaryServerInterceptor(log),
			),
			grpc.ChainStreamInterceptor(
				recovery.NewStreamServerInterceptor(log),
				logging.NewStreamServerInterceptor(log),
				validator.NewStreamServerInterceptor(log),
			),
		),
		grpctr.WithServiceRegistration(
			healthapi.NewRegistration(
				tmplapi.ServiceName,
				opapi.ServiceName,
			),
			reflectapi.NewRegistration(cfg.Server.Grpc.Reflection),
			tmplapi.NewRegistration(templateService),
			opapi.NewRegistration(operationService),
		),
	}, opts...)

	return &App{
		cfg:        cfg,
		log:        log,
		grpcServer: grpctr.NewComponent(cfg.Server.Grpc.Address, opts...),
	}, nil
}

func (a *App) Startup(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		a.log.Info("gRPC server ready to accept requests", zap.String("address", a.cfg.Server.Grpc.Address))
		return a.grpcServer.Startup(ctx)
	})

	return errGroup.Wait()
}

func (a *App) Shutdown(ctx context.Context) error {
	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		a.log.Debug("stopping gRPC server")
		defer a.log.Info("gRPC server stopped")

		return a.grpcServer.Shutdown(ctx)
	})

	return errGroup.Wait()
}
