package fsm

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/fsmkit/pkg/broadcast"
)

var (
	ErrConfiguration     = errors.New("fsm: invalid configuration")
	ErrInvalidTransition = errors.New("fsm: invalid transition")
	ErrUnknownEventName  = errors.New("fsm: unknown event name")
	ErrInvalidDefinition = errors.New("fsm: invalid definition")

	// ErrInvalidArgument is returned for nil listeners and broadcasters.
	ErrInvalidArgument = broadcast.ErrInvalidArgument
)

// InvalidTransitionError is returned by Fire when the transition is unknown
// or not allowed from the current state. It matches ErrInvalidTransition.
type InvalidTransitionError struct {
	Transition Transition
	State      State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("fsm: invalid transition: %q is not valid from state %q", e.Transition, e.State)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// UnknownEventError is returned when subscribing to an event nothing fires.
// It matches ErrUnknownEventName.
type UnknownEventError struct {
	Key string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("fsm: unknown event name %q", e.Key)
}

func (e *UnknownEventError) Is(target error) bool {
	return target == ErrUnknownEventName
}

// ListenerError wraps an error returned by a listener together with the
// event it was subscribed to.
type ListenerError struct {
	Key EventKey
	Err error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("fsm: listener for %s failed: %v", e.Key, e.Err)
}

func (e *ListenerError) Unwrap() error {
	return e.Err
}

func IsInvalidTransitionError(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}

func IsListenerError(err error) bool {
	var e *ListenerError
	return errors.As(err, &e)
}

func IsUnknownEventError(err error) bool {
	var e *UnknownEventError
	return errors.As(err, &e)
}
