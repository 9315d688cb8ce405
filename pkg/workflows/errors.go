package workflows

import "errors"

// ErrInvalidArgument is returned before any call is made when a required
// argument is missing.
var ErrInvalidArgument = errors.New("invalid argument")
