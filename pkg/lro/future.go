// Package lro tracks remote long-running operations described by
// google.longrunning.Operation handles.
//
// A Future wraps the initial handle returned by the call that started the
// remote job, refreshes it through an Operations collaborator and decodes
// the terminal payload into typed values.
package lro

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
)

// Operations is the remote operations-status collaborator.
type Operations interface {
	GetOperation(ctx context.Context, name string) (*longrunningpb.Operation, error)
	CancelOperation(ctx context.Context, name string) error
}

// Future is the typed view of a single remote operation. R is the type of
// the success payload and M the type of the metadata blob.
//
// Poll and Result must not be called concurrently on the same Future. The
// read accessors are safe to use from other goroutines.
type Future[R, M any] struct {
	ops            Operations
	decodeResult   Decoder[R]
	decodeMetadata Decoder[M]
	poll           PollConfig
	log            *zap.Logger

	mu        sync.Mutex
	op        *longrunningpb.Operation
	result    R
	err       error
	callbacks []func(*Future[R, M])
}

// Wrap builds a Future from the initial handle. It performs no I/O.
func Wrap[R, M any](
	ops Operations,
	op *longrunningpb.Operation,
	result Decoder[R],
	metadata Decoder[M],
	opts ...Option,
) *Future[R, M] {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if op == nil {
		op = &longrunningpb.Operation{}
	}

	f := &Future[R, M]{
		ops:            ops,
		decodeResult:   result,
		decodeMetadata: metadata,
		poll:           options.poll,
		log:            options.log,
		op:             op,
	}
	if op.GetDone() {
		f.settle()
	}

	return f
}

func (f *Future[R, M]) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.op.GetName()
}

func (f *Future[R, M]) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.op.GetDone()
}

// Snapshot returns a copy of the most recent handle.
func (f *Future[R, M]) Snapshot() *longrunningpb.Operation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return proto.Clone(f.op).(*longrunningpb.Operation)
}

// Poll refreshes the handle with one status query. It is a no-op once the
// operation is done. On failure the previous snapshot is kept.
func (f *Future[R, M]) Poll(ctx context.Context) error {
	if f.Done() {
		return nil
	}

	name := f.Name()
	op, err := f.ops.GetOperation(ctx, name)
	if err == nil && op == nil {
		err = errors.New("empty operation in response")
	}
	if err != nil {
		f.log.Debug("operation poll failed", zap.String("operation", name), zap.Error(err))
		return &TransportError{Op: "get operation", Name: name, Err: err}
	}

	for _, callback := range f.update(op) {
		callback(f)
	}

	return nil
}

func (f *Future[R, M]) update(op *longrunningpb.Operation) []func(*Future[R, M]) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.op = op
	if !op.GetDone() {
		return nil
	}

	f.settle()
	f.log.Debug("operation done", zap.String("operation", op.GetName()), zap.Error(f.err))

	callbacks := f.callbacks
	f.callbacks = nil
	return callbacks
}

// settle decodes the terminal payload of f.op. Called with f.mu held.
func (f *Future[R, M]) settle() {
	name := f.op.GetName()

	switch res := f.op.GetResult().(type) {
	case *longrunningpb.Operation_Error:
		code := codes.Code(res.Error.GetCode())
		if code == codes.OK {
			code = codes.Unknown
		}
		f.err = &RemoteError{
			Name:    name,
			Code:    code,
			Message: res.Error.GetMessage(),
			Details: res.Error.GetDetails(),
		}
	case *longrunningpb.Operation_Response:
		if f.decodeResult == nil {
			return
		}
		value, err := f.decodeResult(res.Response)
		if err != nil {
			f.err = &DecodeError{Name: name, Field: "response", Err: err}
			return
		}
		f.result = value
	default:
		f.err = &DecodeError{Name: name, Field: "response", Err: ErrMalformedOperation}
	}
}

func (f *Future[R, M]) outcome() (R, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.op.GetDone(), f.err
}

// Result blocks until the operation is done and returns the decoded result
// or the remote failure. The loop sleeps between polls following PollConfig.
// A positive WithTimeout also bounds each status query. Transport failures
// are returned as is, without a retry.
func (f *Future[R, M]) Result(ctx context.Context, opts ...ResultOption) (R, error) {
	ro := &resultOptions{}
	for _, opt := range opts {
		opt(ro)
	}

	var deadline time.Time
	if ro.hasTimeout {
		deadline = time.Now().Add(ro.timeout)
	}

	var zero R
	b := f.poll.newBackOff()

	for {
		expired, err := f.pollBefore(ctx, deadline, ro.timeout > 0)
		if expired {
			return zero, fmt.Errorf("%w: operation %q not done after %s: %w", ErrTimeout, f.Name(), ro.timeout, err)
		}
		if err != nil {
			return zero, err
		}
		if result, done, err := f.outcome(); done {
			return result, err
		}

		wait := b.NextBackOff()
		expires := false
		if ro.hasTimeout {
			if remaining := time.Until(deadline); remaining <= wait {
				wait = max(remaining, 0)
				expires = true
			}
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, f.interrupted(ctx.Err())
		case <-timer.C:
		}

		if expires {
			return zero, fmt.Errorf("%w: operation %q not done after %s", ErrTimeout, f.Name(), ro.timeout)
		}
	}
}

// pollBefore runs one Poll that gives up at deadline when bounded is set.
// expired reports a failure caused by the deadline rather than by ctx or the
// server.
func (f *Future[R, M]) pollBefore(ctx context.Context, deadline time.Time, bounded bool) (expired bool, err error) {
	if !bounded {
		return false, f.Poll(ctx)
	}

	pollCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	err = f.Poll(pollCtx)
	return err != nil && pollCtx.Err() != nil && ctx.Err() == nil, err
}

func (f *Future[R, M]) interrupted(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: operation %q: %w", ErrTimeout, f.Name(), err)
	}
	return fmt.Errorf("wait for operation %q: %w", f.Name(), err)
}

// Metadata decodes the metadata of the latest snapshot. It returns
// ErrNoMetadata while the remote job has not reported any.
func (f *Future[R, M]) Metadata() (M, error) {
	f.mu.Lock()
	name, metadata := f.op.GetName(), f.op.GetMetadata()
	f.mu.Unlock()

	var zero M
	if metadata == nil || f.decodeMetadata == nil {
		return zero, ErrNoMetadata
	}

	decoded, err := f.decodeMetadata(metadata)
	if err != nil {
		return zero, &DecodeError{Name: name, Field: "metadata", Err: err}
	}
	return decoded, nil
}

// AddDoneCallback registers fn to run once the operation is done. When the
// operation is already done fn runs immediately in the calling goroutine,
// otherwise in the goroutine whose Poll observed completion.
func (f *Future[R, M]) AddDoneCallback(fn func(*Future[R, M])) {
	if fn == nil {
		return
	}

	f.mu.Lock()
	if !f.op.GetDone() {
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()

	fn(f)
}

// Cancel asks the server to cancel the operation. The request is advisory:
// the operation may still finish with any terminal outcome, observed through
// Poll or Result. It reports false without a request when already done.
func (f *Future[R, M]) Cancel(ctx context.Context) (bool, error) {
	if f.Done() {
		return false, nil
	}

	name := f.Name()
	if err := f.ops.CancelOperation(ctx, name); err != nil {
		return false, &TransportError{Op: "cancel operation", Name: name, Err: err}
	}

	f.log.Info("operation cancellation requested", zap.String("operation", name))
	return true, nil
}

// Cancelled reports whether the operation finished with a cancellation.
func (f *Future[R, M]) Cancelled() bool {
	_, done, err := f.outcome()
	return done && errors.Is(err, ErrCancellationRequested)
}
