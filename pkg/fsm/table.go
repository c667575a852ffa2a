package fsm

import (
	"fmt"
	"slices"
)

// table is the immutable transition table built from a Config.
type table struct {
	order  []Transition
	from   map[Transition]From
	to     map[Transition]State
	states []State
	known  map[State]struct{}
}

// Validate reports configuration errors. All of them wrap ErrConfiguration.
func (c Config) Validate() error {
	_, err := newTable(c)
	return err
}

func newTable(cfg Config) (*table, error) {
	if cfg.Initial == "" {
		return nil, fmt.Errorf("%w: initial state is required", ErrConfiguration)
	}
	if cfg.Initial == AnyName {
		return nil, fmt.Errorf("%w: %q is reserved and cannot name a state", ErrConfiguration, AnyName)
	}
	if len(cfg.Transitions) == 0 {
		return nil, fmt.Errorf("%w: at least one transition is required", ErrConfiguration)
	}

	t := &table{
		order: make([]Transition, 0, len(cfg.Transitions)),
		from:  make(map[Transition]From, len(cfg.Transitions)),
		to:    make(map[Transition]State, len(cfg.Transitions)),
		known: make(map[State]struct{}),
	}
	t.addState(cfg.Initial)

	for i, spec := range cfg.Transitions {
		switch {
		case spec.Name == "":
			return nil, fmt.Errorf("%w: transition[%d] has no name", ErrConfiguration, i)
		case spec.To == "":
			return nil, fmt.Errorf("%w: transition %q has no destination", ErrConfiguration, spec.Name)
		case spec.Name == AnyName || spec.To == AnyName || slices.Contains(spec.From.states, AnyName):
			return nil, fmt.Errorf("%w: transition %q uses the reserved name %q", ErrConfiguration, spec.Name, AnyName)
		case spec.From.IsZero():
			return nil, fmt.Errorf("%w: transition %q has no source states", ErrConfiguration, spec.Name)
		case slices.Contains(spec.From.states, ""):
			return nil, fmt.Errorf("%w: transition %q has an empty source state", ErrConfiguration, spec.Name)
		}
		if _, dup := t.from[spec.Name]; dup {
			return nil, fmt.Errorf("%w: transition %q declared twice", ErrConfiguration, spec.Name)
		}

		from := spec.From
		if !from.IsAny() {
			from = FromStates(spec.From.states...)
		}

		t.order = append(t.order, spec.Name)
		t.from[spec.Name] = from
		t.to[spec.Name] = spec.To

		for _, s := range from.states {
			t.addState(s)
		}
		t.addState(spec.To)
	}

	return t, nil
}

func (t *table) addState(s State) {
	if _, ok := t.known[s]; ok {
		return
	}
	t.known[s] = struct{}{}
	t.states = append(t.states, s)
}

// can reports whether name may fire from state. Unknown names are never allowed.
func (t *table) can(state State, name Transition) bool {
	from, ok := t.from[name]
	return ok && from.Contains(state)
}

func (t *table) isState(s State) bool {
	_, ok := t.known[s]
	return ok
}

func (t *table) isTransition(name Transition) bool {
	_, ok := t.from[name]
	return ok
}

func (t *table) specs() []TransitionSpec {
	out := make([]TransitionSpec, 0, len(t.order))
	for _, name := range t.order {
		from := t.from[name]
		out = append(out, TransitionSpec{
			Name: name,
			From: From{states: slices.Clone(from.states), any: from.any},
			To:   t.to[name],
		})
	}
	return out
}
