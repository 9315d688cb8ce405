package opsrv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	"go.uber.org/zap"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	defaultPageSize    = 50
	maxPageSize        = 1000
	defaultWaitTimeout = time.Minute
)

type OperationRepository interface {
	opdomain.OperationGetter
	opdomain.OperationLister
	opdomain.OperationUpdater
	opdomain.OperationDeleter
}

type Service struct {
	operationRepository OperationRepository
	log                 *zap.Logger
	waitInterval        time.Duration
}

type Option func(s *Service)

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

func WithWaitInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.waitInterval = d
		}
	}
}

func NewService(operationRepository OperationRepository, opts ...Option) (*Service, error) {
	if operationRepository == nil {
		return nil, errors.New("operation repository is required")
	}

	s := &Service{
		operationRepository: operationRepository,
		log:                 zap.NewNop(),
		waitInterval:        100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GetOperation returns the operation after moving its workflow one step
// forward.
func (s *Service) GetOperation(ctx context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	res, err := s.operationRepository.UpdateOperation(ctx, &opdomain.UpdateOperationArgs{
		Name:   args.Name,
		Mutate: s.advance,
	})
	if err != nil {
		return nil, err
	}

	return &opdomain.GetOperationResult{Operation: res.Operation}, nil
}

func (s *Service) advance(op *longrunning.Operation) error {
	meta := &dataprocpb.WorkflowMetadata{}
	if err := op.GetMetadata().UnmarshalTo(meta); err != nil {
		s.log.Warn("operation carries no workflow metadata", zap.String("operation", op.GetName()), zap.Error(err))
		return fmt.Errorf("cannot decode workflow metadata of %s: %w", op.GetName(), err)
	}

	if !opdomain.AdvanceWorkflow(meta) {
		return setMetadata(op, meta)
	}

	response, err := anypb.New(&emptypb.Empty{})
	if err != nil {
		return err
	}

	op.Done = true
	op.Result = &longrunning.Operation_Response{Response: response}
	s.log.Info("workflow finished", zap.String("operation", op.GetName()), zap.String("template", meta.GetTemplate()))

	return setMetadata(op, meta)
}

func (s *Service) ListOperations(ctx context.Context, args *opdomain.ListOperationsArgs) (*opdomain.ListOperationsResult, error) {
	if args == nil {
		args = &opdomain.ListOperationsArgs{}
	}

	if args.PageSize < 1 {
		args.PageSize = defaultPageSize
	}

	args.PageSize = min(args.PageSize, maxPageSize)

	return s.operationRepository.ListOperations(ctx, args)
}

// CancelOperation aborts the workflow. Cancelling a finished operation is a
// no-op.
func (s *Service) CancelOperation(ctx context.Context, args *opdomain.CancelOperationArgs) error {
	if args == nil || args.Name == "" {
		return fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	_, err := s.operationRepository.UpdateOperation(ctx, &opdomain.UpdateOperationArgs{
		Name: args.Name,
		Mutate: func(op *longrunning.Operation) error {
			meta := &dataprocpb.WorkflowMetadata{}
			if err := op.GetMetadata().UnmarshalTo(meta); err == nil {
				opdomain.AbortWorkflow(meta, "workflow cancelled")
				if err := setMetadata(op, meta); err != nil {
					return err
				}
			}

			op.Done = true
			op.Result = &longrunning.Operation_Error{Error: &spb.Status{
				Code:    int32(codes.Canceled),
				Message: "operation cancelled",
			}}
			return nil
		},
	})
	if err != nil {
		return err
	}

	s.log.Info("operation cancelled", zap.String("operation", string(args.Name)))
	return nil
}

func (s *Service) DeleteOperation(ctx context.Context, args *opdomain.DeleteOperationArgs) error {
	if args == nil || args.Name == "" {
		return fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	return s.operationRepository.DeleteOperation(ctx, args)
}

// WaitOperation polls the operation until it is done or the timeout elapses
// and returns its latest state either way.
func (s *Service) WaitOperation(ctx context.Context, args *opdomain.WaitOperationArgs) (*opdomain.WaitOperationResult, error) {
	if args == nil || args.Name == "" {
		return nil, fmt.Errorf("%w: operation name is required", opdomain.ErrInvalidArgument)
	}

	timeout := args.Timeout
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	deadline := time.Now().Add(timeout)

	ticker := time.NewTicker(s.waitInterval)
	defer ticker.Stop()

	for {
		res, err := s.GetOperation(ctx, &opdomain.GetOperationArgs{Name: args.Name})
		if err != nil {
			return nil, err
		}
		if res.Operation.GetDone() || !time.Now().Before(deadline) {
			return &opdomain.WaitOperationResult{Operation: res.Operation}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func setMetadata(op *longrunning.Operation, meta *dataprocpb.WorkflowMetadata) error {
	packed, err := anypb.New(meta)
	if err != nil {
		return fmt.Errorf("cannot pack workflow metadata: %w", err)
	}
	op.Metadata = packed
	return nil
}
