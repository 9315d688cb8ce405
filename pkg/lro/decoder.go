package lro

import (
	"errors"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// Decoder maps an opaque payload of an operation to a typed value.
type Decoder[T any] func(payload *anypb.Any) (T, error)

// ProtoDecoder unpacks the payload into a fresh message of type T.
// T must be a pointer message type such as *emptypb.Empty.
func ProtoDecoder[T proto.Message]() Decoder[T] {
	return func(payload *anypb.Any) (T, error) {
		var zero T
		if payload == nil {
			return zero, errors.New("payload is empty")
		}

		msg := zero.ProtoReflect().New().Interface().(T)
		if err := payload.UnmarshalTo(msg); err != nil {
			return zero, err
		}
		return msg, nil
	}
}
