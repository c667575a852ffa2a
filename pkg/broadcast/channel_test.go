package broadcast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/broadcast"
)

func TestChannel_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("nil listener is rejected", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		unsubscribe, err := ch.Subscribe(nil)
		require.ErrorIs(t, err, broadcast.ErrInvalidArgument)
		assert.Nil(t, unsubscribe)
		assert.Equal(t, 0, ch.Len())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()
		var ch broadcast.Channel[string]

		var got []string
		_, err := ch.Subscribe(func(v string) error {
			got = append(got, v)
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, ch.Publish("a"))
		assert.Equal(t, []string{"a"}, got)
	})
}

func TestChannel_Publish(t *testing.T) {
	t.Parallel()

	t.Run("listeners fire in registration order", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		var order []string
		for _, name := range []string{"first", "second", "third"} {
			_, err := ch.Subscribe(func(int) error {
				order = append(order, name)
				return nil
			})
			require.NoError(t, err)
		}

		require.NoError(t, ch.Publish(1))
		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("every listener gets the published value", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		sum := 0
		add := func(v int) error {
			sum += v
			return nil
		}
		_, _ = ch.Subscribe(add)
		_, _ = ch.Subscribe(add)

		require.NoError(t, ch.Publish(21))
		assert.Equal(t, 42, sum)
	})

	t.Run("listener error stops delivery", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()
		boom := errors.New("boom")

		called := false
		_, _ = ch.Subscribe(func(int) error { return boom })
		_, _ = ch.Subscribe(func(int) error {
			called = true
			return nil
		})

		err := ch.Publish(1)
		require.ErrorIs(t, err, boom)
		assert.False(t, called)
	})

	t.Run("publish without listeners", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()
		assert.NoError(t, ch.Publish(1))
	})

	t.Run("listener added during publish fires next time", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		late := 0
		added := false
		_, _ = ch.Subscribe(func(int) error {
			if !added {
				added = true
				_, _ = ch.Subscribe(func(int) error {
					late++
					return nil
				})
			}
			return nil
		})

		require.NoError(t, ch.Publish(1))
		assert.Equal(t, 0, late)
		require.NoError(t, ch.Publish(2))
		assert.Equal(t, 1, late)
	})
}

func TestChannel_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("removes only its own registration", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		count := 0
		inc := func(int) error {
			count++
			return nil
		}
		first, err := ch.Subscribe(inc)
		require.NoError(t, err)
		_, err = ch.Subscribe(inc)
		require.NoError(t, err)

		first()
		require.NoError(t, ch.Publish(0))
		assert.Equal(t, 1, count)
		assert.Equal(t, 1, ch.Len())
	})

	t.Run("repeated calls are no-ops", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		count := 0
		unsubscribe, _ := ch.Subscribe(func(int) error {
			count++
			return nil
		})
		_, _ = ch.Subscribe(func(int) error {
			count += 10
			return nil
		})

		unsubscribe()
		unsubscribe()
		unsubscribe()

		require.NoError(t, ch.Publish(0))
		assert.Equal(t, 10, count)
		assert.Equal(t, 1, ch.Len())
	})

	t.Run("listener removed mid publish is skipped", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		var second broadcast.Unsubscribe
		secondCalled := false
		_, _ = ch.Subscribe(func(int) error {
			second()
			return nil
		})
		second, _ = ch.Subscribe(func(int) error {
			secondCalled = true
			return nil
		})

		require.NoError(t, ch.Publish(0))
		assert.False(t, secondCalled)
	})

	t.Run("listener can remove itself", func(t *testing.T) {
		t.Parallel()
		ch := broadcast.NewChannel[int]()

		calls := 0
		var self broadcast.Unsubscribe
		self, _ = ch.Subscribe(func(int) error {
			calls++
			self()
			return nil
		})

		require.NoError(t, ch.Publish(0))
		require.NoError(t, ch.Publish(0))
		assert.Equal(t, 1, calls)
	})
}
