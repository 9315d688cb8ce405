package tmpldomain

import "errors"

var (
	ErrInvalidName      = errors.New("invalid workflow template name")
	ErrInvalidParent    = errors.New("invalid workflow template parent")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("workflow template not found")
	ErrAlreadyExists    = errors.New("workflow template already exists")
	ErrVersionMismatch  = errors.New("workflow template version mismatch")
	ErrInvalidPageToken = errors.New("invalid page token")
)
