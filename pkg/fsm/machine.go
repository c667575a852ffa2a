package fsm

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

const defaultName = "fsm"

// Machine is a finite state machine built from a Config.
//
// A Machine is not safe for concurrent use. It has a single owner; listeners
// run synchronously inside Fire and may call Fire again, in which case the
// nested transition completes before the outer sequence resumes.
type Machine struct {
	id      string
	name    string
	initial State
	current State
	table   *table
	events  registry
	logger  *slog.Logger
}

// New builds a machine from cfg. It returns an error wrapping
// ErrConfiguration when cfg is incomplete.
func New(cfg Config, opts ...Option) (*Machine, error) {
	t, err := newTable(cfg)
	if err != nil {
		return nil, err
	}

	m := &Machine{
		id:      uuid.NewString(),
		name:    cfg.Name,
		initial: cfg.Initial,
		current: cfg.Initial,
		table:   t,
		events:  newRegistry(t),
		logger:  logger.Discard(),
	}
	if m.name == "" {
		m.name = defaultName
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With(
		logger.Component("fsm"),
		logger.Machine(m.name),
		logger.MachineID(m.id),
	)

	return m, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(cfg Config, opts ...Option) *Machine {
	m, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// ID returns the machine instance id.
func (m *Machine) ID() string { return m.id }

// Name returns the configured display name.
func (m *Machine) Name() string { return m.name }

// Initial returns the state the machine was created in.
func (m *Machine) Initial() State { return m.initial }

// State returns the current state.
func (m *Machine) State() State { return m.current }

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool { return m.current == s }

// Can reports whether t may fire from the current state.
// Unknown transitions are never allowed.
func (m *Machine) Can(t Transition) bool { return m.table.can(m.current, t) }

// Cannot is the negation of Can.
func (m *Machine) Cannot(t Transition) bool { return !m.Can(t) }

// AllowedTransitions returns the transitions that may fire from the current
// state, in declaration order.
func (m *Machine) AllowedTransitions() []Transition {
	out := make([]Transition, 0, len(m.table.order))
	for _, name := range m.table.order {
		if m.table.can(m.current, name) {
			out = append(out, name)
		}
	}
	return out
}

// Transitions returns the declared transitions in declaration order.
func (m *Machine) Transitions() []TransitionSpec { return m.table.specs() }

// States returns every state named in the configuration, in order of first
// appearance, starting with the initial state.
func (m *Machine) States() []State { return slices.Clone(m.table.states) }

// Reset moves the machine back to its initial state without firing events.
func (m *Machine) Reset() {
	m.current = m.initial
}

// String returns "<name>@<state>".
func (m *Machine) String() string {
	return m.name + "@" + string(m.current)
}

// Fire executes transition t with the given payload.
//
// If t cannot fire from the current state, Fire returns an
// *InvalidTransitionError and nothing happens. Otherwise listeners fire in
// this order, all receiving the same Event:
//
//	before:<t>, before:*, exit:<from>, exit:*,
//	(state changes)
//	enter:<to>, enter:*, after:<t>, after:*
//
// A listener error stops the sequence and is returned as a *ListenerError.
// When that happens during enter or after, the state has already changed.
func (m *Machine) Fire(t Transition, data any) error {
	if !m.Can(t) {
		m.logger.Debug("transition rejected",
			logger.Transition(t),
			logger.State(m.current),
		)
		return &InvalidTransitionError{Transition: t, State: m.current}
	}

	e := Event{
		Transition: t,
		From:       m.current,
		To:         m.table.to[t],
		Data:       data,
		MachineID:  m.id,
	}
	pre, post := sequence(e)

	for _, key := range pre {
		if err := m.publish(key, e); err != nil {
			return err
		}
	}

	m.current = e.To
	m.logger.Debug("transition fired",
		logger.Transition(t),
		logger.FromState(e.From),
		logger.ToState(e.To),
	)

	for _, key := range post {
		if err := m.publish(key, e); err != nil {
			return err
		}
	}
	return nil
}

// Trigger returns a function bound to a declared transition.
func (m *Machine) Trigger(t Transition) (TriggerFunc, bool) {
	if !m.table.isTransition(t) {
		return nil, false
	}
	return func(data any) error { return m.Fire(t, data) }, true
}

// Triggers returns a bound function for every declared transition.
func (m *Machine) Triggers() map[Transition]TriggerFunc {
	out := make(map[Transition]TriggerFunc, len(m.table.order))
	for _, name := range m.table.order {
		fn, _ := m.Trigger(name)
		out[name] = fn
	}
	return out
}

func (m *Machine) publish(key EventKey, e Event) error {
	ch, ok := m.events[key]
	if !ok {
		return nil
	}
	if err := ch.Publish(e); err != nil {
		m.logger.Warn("listener failed",
			logger.Event(key.String()),
			logger.Transition(e.Transition),
			logger.Error(err),
		)
		return &ListenerError{Key: key, Err: err}
	}
	return nil
}
