package oprepo

import (
	"context"
	"errors"
	"testing"

	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	"github.com/stretchr/testify/require"
)

func TestRepository_CreateOperation(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		r := NewRepository()

		res, err := r.CreateOperation(ctx, &opdomain.CreateOperationArgs{
			Operation: &longrunning.Operation{Name: "projects/p/regions/r/operations/1"},
		})
		require.NoError(t, err)
		require.False(t, res.Existing)
		require.Equal(t, "projects/p/regions/r/operations/1", res.Operation.GetName())
	})

	t.Run("existing operation returned", func(t *testing.T) {
		r := NewRepository()
		op := &longrunning.Operation{Name: "operations/1"}

		_, err := r.CreateOperation(ctx, &opdomain.CreateOperationArgs{Operation: op})
		require.NoError(t, err)

		res, err := r.CreateOperation(ctx, &opdomain.CreateOperationArgs{
			Operation: &longrunning.Operation{Name: "operations/1", Done: true},
		})
		require.NoError(t, err)
		require.True(t, res.Existing)
		require.False(t, res.Operation.GetDone())
	})

	t.Run("error: invalid name", func(t *testing.T) {
		_, err := NewRepository().CreateOperation(ctx, &opdomain.CreateOperationArgs{
			Operation: &longrunning.Operation{Name: "jobs/1"},
		})
		require.ErrorIs(t, err, opdomain.ErrInvalidOperationName)
	})
}

func TestRepository_UpdateOperation(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, err := r.CreateOperation(ctx, &opdomain.CreateOperationArgs{Operation: &longrunning.Operation{Name: "operations/1"}})
	require.NoError(t, err)

	t.Run("error: not found", func(t *testing.T) {
		_, err := r.UpdateOperation(ctx, &opdomain.UpdateOperationArgs{
			Name:   "operations/missing",
			Mutate: func(op *longrunning.Operation) error { return nil },
		})
		require.ErrorIs(t, err, opdomain.ErrOperationNotFound)
	})

	t.Run("error: mutate fails", func(t *testing.T) {
		wantErr := errors.New("boom")
		_, err := r.UpdateOperation(ctx, &opdomain.UpdateOperationArgs{
			Name:   "operations/1",
			Mutate: func(op *longrunning.Operation) error { op.Done = true; return wantErr },
		})
		require.ErrorIs(t, err, wantErr)

		got, err := r.GetOperation(ctx, &opdomain.GetOperationArgs{Name: "operations/1"})
		require.NoError(t, err)
		require.False(t, got.Operation.GetDone())
	})

	t.Run("done operations are frozen", func(t *testing.T) {
		res, err := r.UpdateOperation(ctx, &opdomain.UpdateOperationArgs{
			Name:   "operations/1",
			Mutate: func(op *longrunning.Operation) error { op.Done = true; op.Name = "renamed"; return nil },
		})
		require.NoError(t, err)
		require.True(t, res.Operation.GetDone())
		require.Equal(t, "operations/1", res.Operation.GetName())

		calls := 0
		_, err = r.UpdateOperation(ctx, &opdomain.UpdateOperationArgs{
			Name:   "operations/1",
			Mutate: func(op *longrunning.Operation) error { calls++; return nil },
		})
		require.NoError(t, err)
		require.Zero(t, calls)
	})
}

func TestRepository_DeleteOperation(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, err := r.CreateOperation(ctx, &opdomain.CreateOperationArgs{Operation: &longrunning.Operation{Name: "operations/1"}})
	require.NoError(t, err)

	require.NoError(t, r.DeleteOperation(ctx, &opdomain.DeleteOperationArgs{Name: "operations/1"}))
	require.ErrorIs(t, r.DeleteOperation(ctx, &opdomain.DeleteOperationArgs{Name: "operations/1"}), opdomain.ErrOperationNotFound)

	_, err = r.GetOperation(ctx, &opdomain.GetOperationArgs{Name: "operations/1"})
	require.ErrorIs(t, err, opdomain.ErrOperationNotFound)
}

func TestRepository_ListOperations(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	for _, op := range []*longrunning.Operation{
		{Name: "projects/p/regions/r/operations/a"},
		{Name: "projects/p/regions/r/operations/b", Done: true},
		{Name: "projects/p/regions/r/operations/c"},
		{Name: "projects/p/regions/other/operations/d"},
	} {
		_, err := r.CreateOperation(ctx, &opdomain.CreateOperationArgs{Operation: op})
		require.NoError(t, err)
	}

	res, err := r.ListOperations(ctx, &opdomain.ListOperationsArgs{
		Name:     "projects/p/regions/r/operations",
		PageSize: 2,
	})
	require.NoError(t, err)
	require.Len(t, res.Operations, 2)
	require.Equal(t, "projects/p/regions/r/operations/b", res.NextPageToken)

	res, err = r.ListOperations(ctx, &opdomain.ListOperationsArgs{
		Name:      "projects/p/regions/r/operations",
		PageSize:  2,
		PageToken: res.NextPageToken,
	})
	require.NoError(t, err)
	require.Len(t, res.Operations, 1)
	require.Equal(t, "projects/p/regions/r/operations/c", res.Operations[0].GetName())
	require.Empty(t, res.NextPageToken)

	res, err = r.ListOperations(ctx, &opdomain.ListOperationsArgs{
		Name:     "projects/p/regions/r/operations",
		Filter:   "done = false",
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, res.Operations, 2)

	res, err = r.ListOperations(ctx, &opdomain.ListOperationsArgs{PageSize: 10})
	require.NoError(t, err)
	require.Len(t, res.Operations, 4)
}
