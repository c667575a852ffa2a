package fsm

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/fsmkit/pkg/broadcast"
)

// State is the name of a state. States are not declared up front: any name
// used as a source or destination of a transition is a state.
type State string

// Transition is the name of a declared transition.
type Transition string

// From is the set of states a transition may start from.
// Use FromStates or FromAny to build one; the zero value is invalid.
type From struct {
	states []State
	any    bool
}

// FromAny allows a transition from every state, including states that appear
// nowhere else in the configuration.
func FromAny() From {
	return From{any: true}
}

// FromStates allows a transition from the listed states. Duplicates are dropped.
func FromStates(states ...State) From {
	f := From{states: make([]State, 0, len(states))}
	for _, s := range states {
		if !slices.Contains(f.states, s) {
			f.states = append(f.states, s)
		}
	}
	return f
}

// IsAny reports whether the set is the wildcard.
func (f From) IsAny() bool { return f.any }

// IsZero reports whether the set allows nothing.
func (f From) IsZero() bool { return !f.any && len(f.states) == 0 }

// States returns a copy of the explicit source states.
func (f From) States() []State { return slices.Clone(f.states) }

// Contains reports whether s is an allowed source state.
func (f From) Contains(s State) bool {
	return f.any || slices.Contains(f.states, s)
}

func (f From) String() string {
	if f.any {
		return AnyName
	}
	return fmt.Sprint(f.states)
}

// TransitionSpec declares one transition.
type TransitionSpec struct {
	Name Transition
	From From
	To   State
}

// Config describes a machine.
type Config struct {
	// Name is the display identity used by Machine.String and in logs.
	Name string
	// Initial is the state the machine starts in.
	Initial State
	// Transitions in declaration order. AllowedTransitions keeps this order.
	Transitions []TransitionSpec
}

// Event describes one transition. The same value is delivered to every
// listener fired by a single Fire call.
type Event struct {
	Transition Transition
	From       State
	To         State
	// Data is the payload passed to Fire.
	Data any
	// MachineID identifies the machine that fired the event.
	MachineID string
}

// Listener handles a lifecycle event. Returning an error aborts the rest of
// the firing sequence and makes Fire return a *ListenerError.
type Listener func(e Event) error

// Unsubscribe detaches a listener. It is safe to call more than once.
type Unsubscribe = broadcast.Unsubscribe

// TriggerFunc fires one bound transition with the given payload.
type TriggerFunc func(data any) error
