package lro

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/anypb"
)

var (
	ErrTimeout               = errors.New("timed out waiting for operation")
	ErrNoMetadata            = errors.New("operation contains no metadata")
	ErrCancellationRequested = errors.New("operation cancellation requested")
	ErrMalformedOperation    = errors.New("operation is done but has neither response nor error")
)

// TransportError reports a failed status query or cancel request. The
// future's snapshot is unchanged when it is returned.
type TransportError struct {
	Op   string
	Name string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is the terminal failure reported by the remote job itself.
type RemoteError struct {
	Name    string
	Code    codes.Code
	Message string
	Details []*anypb.Any
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("operation %q failed: code = %s desc = %s", e.Name, e.Code, e.Message)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrCancellationRequested && e.Code == codes.Canceled
}

type DecodeError struct {
	Name  string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s of operation %q: %v", e.Field, e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
