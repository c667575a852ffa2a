// Package fsm builds finite state machines from a declarative table of named
// transitions and broadcasts lifecycle events around every state change.
//
// A machine is described by a Config: an initial state and an ordered list of
// transitions, each with its allowed source states and one destination.
// States are implicit; any name used as a source or destination is a state.
// FromAny makes a transition legal from every state.
//
//	m, err := fsm.New(fsm.Config{
//	    Name:    "traffic-light",
//	    Initial: "green",
//	    Transitions: []fsm.TransitionSpec{
//	        {Name: "clear", From: fsm.FromAny(), To: "green"},
//	        {Name: "warn", From: fsm.FromStates("green"), To: "yellow"},
//	        {Name: "alert", From: fsm.FromStates("green", "yellow"), To: "red"},
//	    },
//	})
//
// # Queries
//
// State, Is, Can, Cannot and AllowedTransitions inspect the machine without
// side effects. Unknown transition names are simply not allowed.
//
// # Firing
//
// Fire(t, data) checks Can(t); an illegal transition returns an
// *InvalidTransitionError (errors.Is(err, fsm.ErrInvalidTransition)) and
// changes nothing. A legal transition publishes one Event to these channels,
// in order:
//
//	before:<transition>  before:*
//	exit:<from>          exit:*
//	                     (state changes here)
//	enter:<to>           enter:*
//	after:<transition>   after:*
//
// Listeners see the old state up to exit:* and the new one from enter:<to>.
// A listener error aborts the sequence and Fire returns it wrapped in a
// *ListenerError; if that happens after the state change, the machine stays
// in the new state.
//
// # Subscribing
//
// OnBefore, OnExit, OnEnter, OnAfter and their *Any variants return an
// Unsubscribe func that removes exactly that registration. OnState and
// OnTransition alias OnEnter and OnAfter. SubscribeKey accepts the string
// form ("enter:red", "after:*", "on:alert"). Names that never appear in the
// configuration fail with ErrUnknownEventName.
//
// # Concurrency
//
// A Machine has a single owner and is not safe for concurrent use. Everything
// runs synchronously inside Fire; a listener may call Fire again, and the
// nested transition runs to completion before the outer sequence continues.
// Use Stream with a broadcast.MemoryBroadcaster to observe transitions from
// other goroutines.
//
// # Extending
//
// Embed *Machine in your own type to add domain methods:
//
//	type Conn struct{ *fsm.Machine }
//
//	func (c Conn) Connected() bool { return c.Is("up") }
//
// # Definitions and legacy mode
//
// ParseYAML, ParseJSON and LoadFile read the same table from files, with "*"
// as the wildcard source. NewLegacy offers the older two-phase contract where
// listeners receive (data, event) for on:<transition> and on:<state> only.
package fsm
