package fsm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/broadcast"
	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestMachine_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("counts transition and state events", func(t *testing.T) {
		t.Parallel()
		m := newTrafficLight(t)

		c := 0
		inc := func(fsm.Event) error {
			c++
			return nil
		}
		for _, key := range []string{"on:warn", "on:yellow", "on:alert", "on:red"} {
			_, err := m.SubscribeKey(key, inc)
			require.NoError(t, err, key)
		}

		require.NoError(t, m.Fire(Warn, nil))
		require.NoError(t, m.Fire(Alert, nil))
		assert.Equal(t, 4, c)
	})

	t.Run("nil listener", func(t *testing.T) {
		t.Parallel()
		m := newTrafficLight(t)
		_, err := m.OnEnter(Green, nil)
		require.ErrorIs(t, err, fsm.ErrInvalidArgument)
		_, err = m.SubscribeKey("enter:green", nil)
		require.ErrorIs(t, err, fsm.ErrInvalidArgument)
	})

	t.Run("unknown names", func(t *testing.T) {
		t.Parallel()
		m := newTrafficLight(t)
		noop := func(fsm.Event) error { return nil }

		_, err := m.OnEnter("blue", noop)
		require.ErrorIs(t, err, fsm.ErrUnknownEventName)
		assert.True(t, fsm.IsUnknownEventError(err))

		_, err = m.OnBefore("explode", noop)
		require.ErrorIs(t, err, fsm.ErrUnknownEventName)

		// transitions are not states and the other way around
		_, err = m.OnEnter(fsm.State(Warn), noop)
		require.ErrorIs(t, err, fsm.ErrUnknownEventName)
		_, err = m.OnAfter(fsm.Transition(Green), noop)
		require.ErrorIs(t, err, fsm.ErrUnknownEventName)

		for _, key := range []string{"", "enter", "enter:", "during:green", "on:", "on:blue", "enter:blue"} {
			_, err = m.SubscribeKey(key, noop)
			require.ErrorIs(t, err, fsm.ErrUnknownEventName, key)
		}
	})

	t.Run("wildcard keys are always wired", func(t *testing.T) {
		t.Parallel()
		m := newTrafficLight(t)
		noop := func(fsm.Event) error { return nil }
		for _, key := range []string{"before:*", "exit:*", "enter:*", "after:*"} {
			_, err := m.SubscribeKey(key, noop)
			require.NoError(t, err, key)
		}
	})

	t.Run("on alias resolves transitions first", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(fsm.Config{
			Initial: "idle",
			Transitions: []fsm.TransitionSpec{
				{Name: "run", From: fsm.FromStates("idle"), To: "run"},
			},
		})

		var got []fsm.Phase
		_, err := m.SubscribeKey("on:run", func(fsm.Event) error {
			got = append(got, fsm.PhaseAfter)
			return nil
		})
		require.NoError(t, err)
		_, err = m.OnState("run", func(fsm.Event) error {
			got = append(got, fsm.PhaseEnter)
			return nil
		})
		require.NoError(t, err)

		require.NoError(t, m.Fire("run", nil))
		assert.Equal(t, []fsm.Phase{fsm.PhaseEnter, fsm.PhaseAfter}, got)
	})

	t.Run("initial state is wired", func(t *testing.T) {
		t.Parallel()
		m := fsm.MustNew(fsm.Config{
			Initial: "boot",
			Transitions: []fsm.TransitionSpec{
				{Name: "reset", From: fsm.FromAny(), To: "ready"},
			},
		})

		exited := false
		_, err := m.OnExit("boot", func(fsm.Event) error {
			exited = true
			return nil
		})
		require.NoError(t, err)
		require.NoError(t, m.Fire("reset", nil))
		assert.True(t, exited)
	})
}

func TestMachine_Unsubscribe(t *testing.T) {
	t.Parallel()
	m := newTrafficLight(t)

	c := 0
	inc := func(fsm.Event) error {
		c++
		return nil
	}
	rem, err := m.OnState(Yellow, inc)
	require.NoError(t, err)
	_, err = m.OnState(Red, inc)
	require.NoError(t, err)

	require.NoError(t, m.Fire(Warn, nil))
	require.NoError(t, m.Fire(Alert, nil))
	assert.Equal(t, 2, c)

	require.NoError(t, m.Fire(Clear, nil))
	rem()
	rem()

	require.NoError(t, m.Fire(Warn, nil))
	assert.Equal(t, 2, c)

	require.NoError(t, m.Fire(Alert, nil))
	assert.Equal(t, 3, c)
}

func TestMachine_Stream(t *testing.T) {
	t.Parallel()

	t.Run("forwards completed transitions", func(t *testing.T) {
		t.Parallel()
		m := newTrafficLight(t)
		b := broadcast.NewMemoryBroadcaster[fsm.Event](8)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		stop, err := m.Stream(ctx, b)
		require.NoError(t, err)

		require.NoError(t, m.Fire(Warn, "w"))
		require.NoError(t, m.Fire(Alert, "a"))

		for _, want := range []fsm.Transition{Warn, Alert} {
			select {
			case msg := <-sub.Receive(ctx):
				assert.Equal(t, want, msg.Data.Transition)
			case <-time.After(time.Second):
				t.Fatalf("no event for %s", want)
			}
		}

		stop()
		require.NoError(t, m.Fire(Clear, nil))
		select {
		case msg := <-sub.Receive(ctx):
			t.Fatalf("unexpected event after stop: %v", msg.Data)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("nil broadcaster", func(t *testing.T) {
		t.Parallel()
		m := newTrafficLight(t)
		_, err := m.Stream(context.Background(), nil)
		require.ErrorIs(t, err, fsm.ErrInvalidArgument)

		var typed *broadcast.MemoryBroadcaster[fsm.Event]
		_, err = m.Stream(context.Background(), typed)
		require.ErrorIs(t, err, fsm.ErrInvalidArgument)

		assert.NotPanics(t, func() {
			require.NoError(t, m.Fire(Warn, nil))
		})
	})
}
