package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-process Broadcaster.
// All methods are safe for concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	watchers    sync.WaitGroup
}

// NewMemoryBroadcaster creates a broadcaster whose subscribers buffer up to
// bufferSize messages (at least one).
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. If the broadcaster is already closed
// the returned subscriber is closed too.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := newSubscriber[T](b.bufferSize)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if done := ctx.Done(); done != nil {
		b.watchers.Add(1)
		go func() {
			defer b.watchers.Done()
			select {
			case <-done:
				b.unsubscribe(sub)
			case <-sub.done:
				// closed by its consumer or dropped as slow
				b.unsubscribe(sub)
			case <-b.done:
			}
		}()
	}

	return sub
}

// Broadcast delivers msg without blocking. Subscribers that cannot take the
// message are closed and removed.
func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for sub := range b.subscribers {
		if !sub.send(msg) {
			// removal needs the write lock we cannot take here
			go b.unsubscribe(sub)
		}
	}
	return nil
}

// Len returns the number of active subscribers.
func (b *MemoryBroadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close closes every subscriber. It is safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.watchers.Wait()
	return nil
}

// unsubscribe is idempotent.
func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
