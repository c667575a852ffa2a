package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records a lifecycle event key (e.g. "enter:red") under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// MachineID records the state machine instance id under the key "machine_id".
// If id is empty, it returns an empty Attr.
func MachineID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("machine_id", id)
}

// Machine records the state machine display name under the key "machine".
// If name is empty, it returns an empty Attr.
func Machine(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("machine", name)
}

// Transition records a transition name under the key "transition".
func Transition[T ~string](name T) slog.Attr {
	return slog.String("transition", string(name))
}

// State records the current state under the key "state".
func State[T ~string](name T) slog.Attr {
	return slog.String("state", string(name))
}

// FromState records the source state of a transition under the key "from".
func FromState[T ~string](name T) slog.Attr {
	return slog.String("from", string(name))
}

// ToState records the destination state of a transition under the key "to".
func ToState[T ~string](name T) slog.Attr {
	return slog.String("to", string(name))
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
