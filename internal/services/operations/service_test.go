package opsrv_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	oprepo "github.com/10Narratives/workflows/internal/repositories/operations"
	opsrv "github.com/10Narratives/workflows/internal/services/operations"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/emptypb"
)

const opName = opdomain.OperationName("projects/p/regions/r/operations/1")

func seed(t *testing.T, steps ...string) *oprepo.Repository {
	t.Helper()

	jobs := make([]*dataprocpb.OrderedJob, 0, len(steps))
	for _, step := range steps {
		jobs = append(jobs, &dataprocpb.OrderedJob{StepId: step})
	}
	meta, err := anypb.New(opdomain.NewWorkflowMetadata(&dataprocpb.WorkflowTemplate{Name: "tmpl", Jobs: jobs}, nil))
	require.NoError(t, err)

	repo := oprepo.NewRepository()
	_, err = repo.CreateOperation(context.Background(), &opdomain.CreateOperationArgs{
		Operation: &longrunning.Operation{Name: string(opName), Metadata: meta},
	})
	require.NoError(t, err)
	return repo
}

func workflowState(t *testing.T, op *longrunning.Operation) dataprocpb.WorkflowMetadata_State {
	t.Helper()
	meta := &dataprocpb.WorkflowMetadata{}
	require.NoError(t, op.GetMetadata().UnmarshalTo(meta))
	return meta.GetState()
}

func TestService_GetOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("error: empty name", func(t *testing.T) {
		svc, err := opsrv.NewService(oprepo.NewRepository())
		require.NoError(t, err)

		_, err = svc.GetOperation(ctx, &opdomain.GetOperationArgs{})
		require.ErrorIs(t, err, opdomain.ErrInvalidArgument)
	})

	t.Run("error: not found", func(t *testing.T) {
		svc, err := opsrv.NewService(oprepo.NewRepository())
		require.NoError(t, err)

		_, err = svc.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opName})
		require.ErrorIs(t, err, opdomain.ErrOperationNotFound)
	})

	t.Run("ok: workflow advances until done", func(t *testing.T) {
		svc, err := opsrv.NewService(seed(t, "only"))
		require.NoError(t, err)

		var op *longrunning.Operation
		for range 2 {
			res, err := svc.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opName})
			require.NoError(t, err)
			op = res.Operation
			require.False(t, op.GetDone())
			require.Equal(t, dataprocpb.WorkflowMetadata_RUNNING, workflowState(t, op))
		}

		res, err := svc.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opName})
		require.NoError(t, err)
		require.True(t, res.Operation.GetDone())
		require.NotNil(t, res.Operation.GetResponse())
		require.Equal(t, dataprocpb.WorkflowMetadata_DONE, workflowState(t, res.Operation))
	})

	t.Run("error: metadata is not a workflow", func(t *testing.T) {
		foreign, err := anypb.New(&emptypb.Empty{})
		require.NoError(t, err)

		repo := oprepo.NewRepository()
		_, err = repo.CreateOperation(ctx, &opdomain.CreateOperationArgs{
			Operation: &longrunning.Operation{Name: string(opName), Metadata: foreign},
		})
		require.NoError(t, err)

		core, logs := observer.New(zap.WarnLevel)
		svc, err := opsrv.NewService(repo, opsrv.WithLogger(zap.New(core)))
		require.NoError(t, err)

		_, err = svc.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opName})
		require.ErrorContains(t, err, "cannot decode workflow metadata")
		require.Equal(t, 1, logs.FilterMessage("operation carries no workflow metadata").Len())

		got, err := repo.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opName})
		require.NoError(t, err)
		require.False(t, got.Operation.GetDone())
	})
}

func TestService_CancelOperation(t *testing.T) {
	ctx := context.Background()
	svc, err := opsrv.NewService(seed(t, "a", "b"))
	require.NoError(t, err)

	require.NoError(t, svc.CancelOperation(ctx, &opdomain.CancelOperationArgs{Name: opName}))

	res, err := svc.GetOperation(ctx, &opdomain.GetOperationArgs{Name: opName})
	require.NoError(t, err)
	require.True(t, res.Operation.GetDone())
	require.EqualValues(t, codes.Canceled, res.Operation.GetError().GetCode())
	require.Equal(t, dataprocpb.WorkflowMetadata_DONE, workflowState(t, res.Operation))

	require.NoError(t, svc.CancelOperation(ctx, &opdomain.CancelOperationArgs{Name: opName}))

	err = svc.CancelOperation(ctx, &opdomain.CancelOperationArgs{Name: "operations/missing"})
	require.ErrorIs(t, err, opdomain.ErrOperationNotFound)
}

func TestService_WaitOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: returns when done", func(t *testing.T) {
		svc, err := opsrv.NewService(seed(t, "only"), opsrv.WithWaitInterval(time.Millisecond))
		require.NoError(t, err)

		res, err := svc.WaitOperation(ctx, &opdomain.WaitOperationArgs{Name: opName, Timeout: 10 * time.Second})
		require.NoError(t, err)
		require.True(t, res.Operation.GetDone())
	})

	t.Run("ok: returns latest state on timeout", func(t *testing.T) {
		svc, err := opsrv.NewService(seed(t, "only"), opsrv.WithWaitInterval(time.Hour))
		require.NoError(t, err)

		res, err := svc.WaitOperation(ctx, &opdomain.WaitOperationArgs{Name: opName, Timeout: time.Nanosecond})
		require.NoError(t, err)
		require.False(t, res.Operation.GetDone())
	})

	t.Run("error: context cancelled", func(t *testing.T) {
		svc, err := opsrv.NewService(seed(t, "only"), opsrv.WithWaitInterval(time.Hour))
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err = svc.WaitOperation(cctx, &opdomain.WaitOperationArgs{Name: opName, Timeout: time.Minute})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_ListOperations(t *testing.T) {
	svc, err := opsrv.NewService(seed(t, "only"))
	require.NoError(t, err)

	res, err := svc.ListOperations(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Operations, 1)
}

func TestService_DeleteOperation(t *testing.T) {
	ctx := context.Background()
	svc, err := opsrv.NewService(seed(t, "only"))
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteOperation(ctx, nil), opdomain.ErrInvalidArgument)
	require.NoError(t, svc.DeleteOperation(ctx, &opdomain.DeleteOperationArgs{Name: opName}))
	require.ErrorIs(t, svc.DeleteOperation(ctx, &opdomain.DeleteOperationArgs{Name: opName}), opdomain.ErrOperationNotFound)
}
