package eventsink

import (
	"context"
	"time"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Sink consumes transition records.
type Sink interface {
	Write(ctx context.Context, r Record) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, r Record) error

// Write calls f(ctx, r).
func (f SinkFunc) Write(ctx context.Context, r Record) error {
	return f(ctx, r)
}

// Source is the part of a machine Attach needs.
type Source interface {
	Name() string
	OnAfterAny(l fsm.Listener) (fsm.Unsubscribe, error)
}

// Attach subscribes sinks to every completed transition of src. Sinks are
// written in order; the first failure stops the rest and is returned to the
// machine as a listener error. ctx is passed to every Write.
func Attach(ctx context.Context, src Source, sinks ...Sink) (fsm.Unsubscribe, error) {
	if len(sinks) == 0 {
		return nil, ErrNoSinks
	}
	for _, s := range sinks {
		if s == nil {
			return nil, ErrNilSink
		}
	}
	sinks = append([]Sink(nil), sinks...)
	name := src.Name()

	return src.OnAfterAny(func(e fsm.Event) error {
		rec := NewRecord(name, e, time.Now().UTC())
		for _, s := range sinks {
			if err := s.Write(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}
