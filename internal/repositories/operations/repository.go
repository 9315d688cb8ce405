package oprepo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	"google.golang.org/protobuf/proto"
)

type Repository struct {
	mu         sync.RWMutex
	operations map[opdomain.OperationName]*longrunning.Operation
}

func NewRepository() *Repository {
	return &Repository{
		operations: make(map[opdomain.OperationName]*longrunning.Operation),
	}
}

func (r *Repository) CreateOperation(ctx context.Context, args *opdomain.CreateOperationArgs) (*opdomain.CreateOperationResult, error) {
	if args == nil || args.Operation == nil {
		return nil, opdomain.ErrInvalidArgument
	}

	name, err := opdomain.ParseOperationName(args.Operation.GetName())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.operations[name]; ok {
		return &opdomain.CreateOperationResult{Operation: clone(existing), Existing: true}, nil
	}

	r.operations[name] = clone(args.Operation)
	return &opdomain.CreateOperationResult{Operation: clone(args.Operation)}, nil
}

func (r *Repository) GetOperation(ctx context.Context, args *opdomain.GetOperationArgs) (*opdomain.GetOperationResult, error) {
	if args == nil {
		return nil, opdomain.ErrInvalidArgument
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.operations[args.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", opdomain.ErrOperationNotFound, args.Name)
	}

	return &opdomain.GetOperationResult{Operation: clone(op)}, nil
}

func (r *Repository) UpdateOperation(ctx context.Context, args *opdomain.UpdateOperationArgs) (*opdomain.UpdateOperationResult, error) {
	if args == nil || args.Mutate == nil {
		return nil, opdomain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.operations[args.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", opdomain.ErrOperationNotFound, args.Name)
	}
	if stored.GetDone() {
		return &opdomain.UpdateOperationResult{Operation: clone(stored)}, nil
	}

	updated := clone(stored)
	if err := args.Mutate(updated); err != nil {
		return nil, err
	}
	updated.Name = stored.GetName()

	r.operations[args.Name] = updated
	return &opdomain.UpdateOperationResult{Operation: clone(updated)}, nil
}

func (r *Repository) DeleteOperation(ctx context.Context, args *opdomain.DeleteOperationArgs) error {
	if args == nil {
		return opdomain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.operations[args.Name]; !ok {
		return fmt.Errorf("%w: %s", opdomain.ErrOperationNotFound, args.Name)
	}

	delete(r.operations, args.Name)
	return nil
}

// ListOperations pages operations of the collection given by args.Name. The
// filter accepts "done=true" and "done=false"; anything else is ignored.
func (r *Repository) ListOperations(ctx context.Context, args *opdomain.ListOperationsArgs) (*opdomain.ListOperationsResult, error) {
	if args == nil || args.PageSize <= 0 {
		return nil, opdomain.ErrInvalidArgument
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	keep := doneFilter(args.Filter)
	collection := strings.TrimSuffix(strings.TrimSuffix(args.Name, "operations"), "/")

	names := make([]string, 0, len(r.operations))
	for name, op := range r.operations {
		if args.Name != "" && name.Collection() != collection {
			continue
		}
		if keep(op) {
			names = append(names, string(name))
		}
	}
	slices.Sort(names)

	start := 0
	if args.PageToken != "" {
		i, found := slices.BinarySearch(names, args.PageToken)
		if !found {
			return nil, fmt.Errorf("%w: %q", opdomain.ErrInvalidPageToken, args.PageToken)
		}
		start = i + 1
	}

	end := min(start+int(args.PageSize), len(names))
	page := make([]*longrunning.Operation, 0, end-start)
	for _, name := range names[start:end] {
		page = append(page, clone(r.operations[opdomain.OperationName(name)]))
	}

	next := ""
	if end < len(names) && len(page) > 0 {
		next = names[end-1]
	}

	return &opdomain.ListOperationsResult{Operations: page, NextPageToken: next}, nil
}

func doneFilter(filter string) func(op *longrunning.Operation) bool {
	switch strings.ReplaceAll(filter, " ", "") {
	case "done=true":
		return func(op *longrunning.Operation) bool { return op.GetDone() }
	case "done=false":
		return func(op *longrunning.Operation) bool { return !op.GetDone() }
	default:
		return func(*longrunning.Operation) bool { return true }
	}
}

func clone(op *longrunning.Operation) *longrunning.Operation {
	return proto.Clone(op).(*longrunning.Operation)
}
