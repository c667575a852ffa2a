package fsm

import (
	"context"
	"reflect"
	"strings"

	"github.com/dmitrymomot/fsmkit/pkg/broadcast"
)

// Subscribe attaches l to the channel identified by key.
// Keys are wired for every declared transition (before, after), every state
// named in the configuration (exit, enter) and the AnyName wildcard of each
// phase; anything else fails with an *UnknownEventError.
func (m *Machine) Subscribe(key EventKey, l Listener) (Unsubscribe, error) {
	if l == nil {
		return nil, ErrInvalidArgument
	}
	ch, ok := m.events[key]
	if !ok {
		return nil, &UnknownEventError{Key: key.String()}
	}
	return ch.Subscribe(broadcast.Listener[Event](l))
}

// SubscribeKey is Subscribe with a string key such as "enter:red" or
// "before:*". The "on:<name>" alias means after:<name> when name is a declared
// transition and enter:<name> otherwise.
func (m *Machine) SubscribeKey(key string, l Listener) (Unsubscribe, error) {
	k, err := m.resolveKey(key)
	if err != nil {
		return nil, err
	}
	return m.Subscribe(k, l)
}

func (m *Machine) resolveKey(key string) (EventKey, error) {
	name, ok := strings.CutPrefix(key, "on:")
	if !ok {
		return ParseEventKey(key)
	}
	if m.table.isTransition(Transition(name)) {
		return AfterKey(Transition(name)), nil
	}
	if name == "" {
		return EventKey{}, &UnknownEventError{Key: key}
	}
	return EnterKey(State(name)), nil
}

// OnBefore subscribes to before:<t>.
func (m *Machine) OnBefore(t Transition, l Listener) (Unsubscribe, error) {
	return m.Subscribe(BeforeKey(t), l)
}

// OnExit subscribes to exit:<s>.
func (m *Machine) OnExit(s State, l Listener) (Unsubscribe, error) {
	return m.Subscribe(ExitKey(s), l)
}

// OnEnter subscribes to enter:<s>.
func (m *Machine) OnEnter(s State, l Listener) (Unsubscribe, error) {
	return m.Subscribe(EnterKey(s), l)
}

// OnAfter subscribes to after:<t>.
func (m *Machine) OnAfter(t Transition, l Listener) (Unsubscribe, error) {
	return m.Subscribe(AfterKey(t), l)
}

// OnState is an alias of OnEnter.
func (m *Machine) OnState(s State, l Listener) (Unsubscribe, error) {
	return m.OnEnter(s, l)
}

// OnTransition is an alias of OnAfter.
func (m *Machine) OnTransition(t Transition, l Listener) (Unsubscribe, error) {
	return m.OnAfter(t, l)
}

// OnBeforeAny subscribes to before:*.
func (m *Machine) OnBeforeAny(l Listener) (Unsubscribe, error) {
	return m.Subscribe(EventKey{Phase: PhaseBefore, Name: AnyName}, l)
}

// OnExitAny subscribes to exit:*.
func (m *Machine) OnExitAny(l Listener) (Unsubscribe, error) {
	return m.Subscribe(EventKey{Phase: PhaseExit, Name: AnyName}, l)
}

// OnEnterAny subscribes to enter:*.
func (m *Machine) OnEnterAny(l Listener) (Unsubscribe, error) {
	return m.Subscribe(EventKey{Phase: PhaseEnter, Name: AnyName}, l)
}

// OnAfterAny subscribes to after:*.
func (m *Machine) OnAfterAny(l Listener) (Unsubscribe, error) {
	return m.Subscribe(EventKey{Phase: PhaseAfter, Name: AnyName}, l)
}

// Stream forwards every completed transition to b, so that goroutines other
// than the machine owner can observe it. Delivery follows b's semantics: a
// MemoryBroadcaster drops events for subscribers that fall behind.
//
// b must be non-nil; a nil interface or a nil pointer fails with
// ErrInvalidArgument.
func (m *Machine) Stream(ctx context.Context, b broadcast.Broadcaster[Event]) (Unsubscribe, error) {
	if isNil(b) {
		return nil, ErrInvalidArgument
	}
	return m.OnAfterAny(func(e Event) error {
		return b.Broadcast(ctx, broadcast.Message[Event]{Data: e})
	})
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
