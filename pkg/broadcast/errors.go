package broadcast

import "errors"

var (
	// ErrInvalidArgument is returned when a nil listener is passed to Subscribe.
	ErrInvalidArgument = errors.New("broadcast: listener must be a non-nil function")
)
