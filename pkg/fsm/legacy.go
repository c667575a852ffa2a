package fsm

import "github.com/dmitrymomot/fsmkit/pkg/broadcast"

// LegacyListener receives the transition payload and the event positionally.
type LegacyListener func(data any, e Event) error

type legacyCall struct {
	data  any
	event Event
}

// LegacyMachine is the two-phase compatibility mode: every transition fires
// on:<transition> before the state changes and on:<to> after it.
// A state and a transition with the same name share one channel.
//
// LegacyMachine does not expose the phased subscription API of Machine.
type LegacyMachine struct {
	m       *Machine
	streams map[string]*broadcast.Channel[legacyCall]
}

// NewLegacy builds a two-phase machine from cfg.
func NewLegacy(cfg Config, opts ...Option) (*LegacyMachine, error) {
	m, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	lm := &LegacyMachine{
		m:       m,
		streams: make(map[string]*broadcast.Channel[legacyCall]),
	}
	for _, name := range m.table.order {
		lm.stream(string(name))
	}
	for _, s := range m.table.states {
		lm.stream(string(s))
	}

	// before:* runs right before the state changes and enter:* right after,
	// which is exactly where the two legacy firings belong.
	if _, err := m.OnBeforeAny(func(e Event) error {
		return lm.emit(string(e.Transition), e)
	}); err != nil {
		return nil, err
	}
	if _, err := m.OnEnterAny(func(e Event) error {
		return lm.emit(string(e.To), e)
	}); err != nil {
		return nil, err
	}

	return lm, nil
}

func (lm *LegacyMachine) stream(name string) {
	if _, ok := lm.streams[name]; !ok {
		lm.streams[name] = broadcast.NewChannel[legacyCall]()
	}
}

func (lm *LegacyMachine) emit(name string, e Event) error {
	return lm.streams[name].Publish(legacyCall{data: e.Data, event: e})
}

// On subscribes fn to on:<name>, where name is a transition or a state.
func (lm *LegacyMachine) On(name string, fn LegacyListener) (Unsubscribe, error) {
	if fn == nil {
		return nil, ErrInvalidArgument
	}
	ch, ok := lm.streams[name]
	if !ok {
		return nil, &UnknownEventError{Key: "on:" + name}
	}
	return ch.Subscribe(func(c legacyCall) error {
		return fn(c.data, c.event)
	})
}

func (lm *LegacyMachine) ID() string {
	return lm.m.ID()
}

func (lm *LegacyMachine) State() State {
	return lm.m.State()
}

func (lm *LegacyMachine) Is(s State) bool {
	return lm.m.Is(s)
}

func (lm *LegacyMachine) Can(t Transition) bool {
	return lm.m.Can(t)
}

func (lm *LegacyMachine) Cannot(t Transition) bool {
	return lm.m.Cannot(t)
}

func (lm *LegacyMachine) AllowedTransitions() []Transition {
	return lm.m.AllowedTransitions()
}

func (lm *LegacyMachine) Trigger(t Transition) (TriggerFunc, bool) {
	return lm.m.Trigger(t)
}

func (lm *LegacyMachine) String() string {
	return lm.m.String()
}

// Fire executes t. Listener errors are returned as *ListenerError values
// keyed by the phase the legacy firing is attached to.
func (lm *LegacyMachine) Fire(t Transition, data any) error {
	return lm.m.Fire(t, data)
}
