package fsm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestLegacyMachine(t *testing.T) {
	t.Parallel()

	t.Run("fires transition then state", func(t *testing.T) {
		t.Parallel()
		lm, err := fsm.NewLegacy(trafficLight())
		require.NoError(t, err)

		var calls []string
		record := func(name string) fsm.LegacyListener {
			return func(data any, e fsm.Event) error {
				calls = append(calls, name+"@"+string(lm.State()))
				assert.Equal(t, "payload", data)
				assert.Equal(t, data, e.Data)
				return nil
			}
		}
		for _, name := range []string{"red", "alert", "yellow", "warn"} {
			_, err := lm.On(name, record(name))
			require.NoError(t, err)
		}

		require.NoError(t, lm.Fire(Warn, "payload"))
		require.NoError(t, lm.Fire(Alert, "payload"))
		assert.Equal(t, []string{"warn@green", "yellow@yellow", "alert@yellow", "red@red"}, calls)
	})

	t.Run("shared names share a channel", func(t *testing.T) {
		t.Parallel()
		lm, err := fsm.NewLegacy(fsm.Config{
			Initial: "idle",
			Transitions: []fsm.TransitionSpec{
				{Name: "run", From: fsm.FromStates("idle"), To: "run"},
			},
		})
		require.NoError(t, err)

		c := 0
		_, err = lm.On("run", func(any, fsm.Event) error {
			c++
			return nil
		})
		require.NoError(t, err)

		require.NoError(t, lm.Fire("run", nil))
		assert.Equal(t, 2, c)
	})

	t.Run("unknown and nil listeners", func(t *testing.T) {
		t.Parallel()
		lm, err := fsm.NewLegacy(trafficLight())
		require.NoError(t, err)

		_, err = lm.On("blue", func(any, fsm.Event) error { return nil })
		require.ErrorIs(t, err, fsm.ErrUnknownEventName)

		_, err = lm.On("red", nil)
		require.ErrorIs(t, err, fsm.ErrInvalidArgument)
	})

	t.Run("queries and errors", func(t *testing.T) {
		t.Parallel()
		lm, err := fsm.NewLegacy(trafficLight())
		require.NoError(t, err)

		assert.True(t, lm.Is(Green))
		assert.True(t, lm.Can(Warn))
		assert.Equal(t, []fsm.Transition{Clear, Warn, Alert}, lm.AllowedTransitions())

		warn, ok := lm.Trigger(Warn)
		require.True(t, ok)
		require.NoError(t, warn(nil))
		assert.True(t, lm.Cannot(Warn))
		require.ErrorIs(t, lm.Fire(Warn, nil), fsm.ErrInvalidTransition)
		assert.Equal(t, "traffic-light@yellow", lm.String())
		assert.NotEmpty(t, lm.ID())

		boom := errors.New("boom")
		_, err = lm.On("alert", func(any, fsm.Event) error { return boom })
		require.NoError(t, err)
		err = lm.Fire(Alert, nil)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, Yellow, lm.State())
	})

	t.Run("bad config", func(t *testing.T) {
		t.Parallel()
		_, err := fsm.NewLegacy(fsm.Config{})
		require.ErrorIs(t, err, fsm.ErrConfiguration)
	})
}
