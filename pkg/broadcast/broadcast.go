package broadcast

import (
	"context"
	"sync"
)

// Message wraps a value delivered by a Broadcaster.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster on its own goroutine.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. It is closed when the
	// subscriber or its broadcaster is closed.
	Receive(ctx context.Context) <-chan Message[T]

	// Close stops delivery. It is idempotent.
	Close() error
}

// Broadcaster fans messages out to asynchronous subscribers.
// Unlike Channel, delivery never blocks the publisher: messages are dropped
// for subscribers whose buffer is full.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that lives until ctx is cancelled,
	// the subscriber is closed, or the broadcaster is closed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends msg to every active subscriber.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close closes all subscribers. Later calls have no effect.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	done   chan struct{}
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch:   make(chan Message[T], bufferSize),
		done: make(chan struct{}),
	}
}

func (s *subscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		close(s.done)
		s.closed = true
	}
	return nil
}

// send reports false when the subscriber is closed or its buffer is full.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
