package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsmkit/pkg/eventsink"
	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file> [transition[=payload]...]",
		Short: "Fire transitions in order and print every event phase",
		Long: `run loads the definition, fires each transition in order and prints one
line per event phase. A payload after "=" is decoded as YAML, so numbers,
lists and maps keep their type; anything else is passed as a string.

When FSMCTL_REDIS_URL is set, every completed transition is also published
as JSON to FSMCTL_REDIS_CHANNEL.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

type step struct {
	transition fsm.Transition
	data       any
}

func parseStep(arg string) step {
	name, payload, ok := strings.Cut(arg, "=")
	s := step{transition: fsm.Transition(name)}
	if !ok {
		return s
	}
	var v any
	if err := yaml.Unmarshal([]byte(payload), &v); err != nil || v == nil {
		s.data = payload
		return s
	}
	s.data = v
	return s
}

func (a *app) run(ctx context.Context, out io.Writer, path string, args []string) error {
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	start := time.Now()

	m, err := a.machine(path)
	if err != nil {
		return err
	}

	if err := traceEvents(m, out); err != nil {
		return err
	}

	sinks := []eventsink.Sink{eventsink.NewLogSink(a.log)}
	if a.settings.Redis.ConnectionURL != "" {
		client, err := eventsink.Connect(ctx, a.settings.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		rs, err := eventsink.NewRedisSink(client, a.settings.Redis.Channel)
		if err != nil {
			return err
		}
		sinks = append(sinks, rs)
	}
	detach, err := eventsink.Attach(ctx, m, sinks...)
	if err != nil {
		return err
	}
	defer detach()

	fmt.Fprintf(out, "initial state: %s\n", m.State())
	for _, arg := range args {
		s := parseStep(arg)
		if s.data != nil {
			fmt.Fprintf(out, "> %s %v\n", s.transition, s.data)
		} else {
			fmt.Fprintf(out, "> %s\n", s.transition)
		}
		if err := m.Fire(s.transition, s.data); err != nil {
			a.log.ErrorContext(ctx, "run aborted", logger.Transition(s.transition), logger.Error(err))
			return fmt.Errorf("fire %q: %w", s.transition, err)
		}
	}
	fmt.Fprintf(out, "final state: %s\n", m.State())
	a.log.DebugContext(ctx, "run finished",
		logger.Machine(m.Name()),
		logger.State(m.State()),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// traceEvents subscribes a printer to every event key of m, so a single
// transition prints all eight phases in firing order.
func traceEvents(m *fsm.Machine, out io.Writer) error {
	keys := []fsm.EventKey{
		{Phase: fsm.PhaseBefore, Name: fsm.AnyName},
		{Phase: fsm.PhaseExit, Name: fsm.AnyName},
		{Phase: fsm.PhaseEnter, Name: fsm.AnyName},
		{Phase: fsm.PhaseAfter, Name: fsm.AnyName},
	}
	for _, spec := range m.Transitions() {
		keys = append(keys, fsm.BeforeKey(spec.Name), fsm.AfterKey(spec.Name))
	}
	for _, s := range m.States() {
		keys = append(keys, fsm.ExitKey(s), fsm.EnterKey(s))
	}

	width := 0
	for _, k := range keys {
		width = max(width, len(k.String()))
	}

	for _, k := range keys {
		key := k.String()
		if _, err := m.Subscribe(k, func(e fsm.Event) error {
			_, err := fmt.Fprintf(out, "  %-*s %s -> %s (state: %s)\n", width, key, e.From, e.To, m.State())
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}
