package broadcast

import "sync"

// Unsubscribe detaches the listener it was returned for.
// Calling it more than once is a no-op.
type Unsubscribe func()

// Listener receives a published value. A non-nil error stops delivery to the
// remaining listeners of the same Publish call.
type Listener[T any] func(v T) error

type registration[T any] struct {
	fn      Listener[T]
	removed bool
}

// Channel delivers values synchronously to its listeners in registration order.
// It is meant for a single owner: Publish and Subscribe must not be called
// from different goroutines concurrently.
// The zero value is ready to use.
type Channel[T any] struct {
	listeners []*registration[T]
}

// NewChannel creates an empty channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{}
}

// Subscribe appends fn to the listener list.
// The returned Unsubscribe removes only this registration, even if the same
// function was subscribed several times.
func (c *Channel[T]) Subscribe(fn Listener[T]) (Unsubscribe, error) {
	if fn == nil {
		return nil, ErrInvalidArgument
	}

	reg := &registration[T]{fn: fn}
	c.listeners = append(c.listeners, reg)

	var once sync.Once
	return func() {
		once.Do(func() { c.remove(reg) })
	}, nil
}

// Publish calls every listener registered when Publish starts, in order.
// Listeners removed during delivery are skipped; listeners added during
// delivery are first called on the next Publish.
// The first listener error is returned as is.
func (c *Channel[T]) Publish(v T) error {
	if len(c.listeners) == 0 {
		return nil
	}

	snapshot := make([]*registration[T], len(c.listeners))
	copy(snapshot, c.listeners)

	for _, reg := range snapshot {
		if reg.removed {
			continue
		}
		if err := reg.fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered listeners.
func (c *Channel[T]) Len() int {
	return len(c.listeners)
}

func (c *Channel[T]) remove(reg *registration[T]) {
	for i, r := range c.listeners {
		if r == reg {
			reg.removed = true
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return
		}
	}
}
