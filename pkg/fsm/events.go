package fsm

import (
	"strings"

	"github.com/dmitrymomot/fsmkit/pkg/broadcast"
)

// AnyName is the wildcard pseudo-name. Listeners subscribed under it fire for
// every transition or state of their phase.
const AnyName = "*"

// Phase says when, relative to the state change, a listener fires.
type Phase uint8

const (
	// PhaseBefore fires before the state changes, keyed by transition name.
	PhaseBefore Phase = iota + 1
	// PhaseExit fires before the state changes, keyed by the source state.
	PhaseExit
	// PhaseEnter fires after the state changes, keyed by the destination state.
	PhaseEnter
	// PhaseAfter fires after the state changes, keyed by transition name.
	PhaseAfter
)

var phaseNames = map[Phase]string{
	PhaseBefore: "before",
	PhaseExit:   "exit",
	PhaseEnter:  "enter",
	PhaseAfter:  "after",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// EventKey identifies one broadcast channel of a machine, e.g. enter:red.
type EventKey struct {
	Phase Phase
	Name  string
}

func (k EventKey) String() string {
	return k.Phase.String() + ":" + k.Name
}

// IsAny reports whether the key is a wildcard key.
func (k EventKey) IsAny() bool {
	return k.Name == AnyName
}

// BeforeKey returns the key of before:<t>.
func BeforeKey(t Transition) EventKey { return EventKey{Phase: PhaseBefore, Name: string(t)} }

// AfterKey returns the key of after:<t>.
func AfterKey(t Transition) EventKey { return EventKey{Phase: PhaseAfter, Name: string(t)} }

// ExitKey returns the key of exit:<s>.
func ExitKey(s State) EventKey { return EventKey{Phase: PhaseExit, Name: string(s)} }

// EnterKey returns the key of enter:<s>.
func EnterKey(s State) EventKey { return EventKey{Phase: PhaseEnter, Name: string(s)} }

// ParseEventKey parses "<phase>:<name>" where phase is before, exit, enter or
// after. The "on:" alias depends on the machine and is resolved by
// Machine.SubscribeKey.
func ParseEventKey(s string) (EventKey, error) {
	prefix, name, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return EventKey{}, &UnknownEventError{Key: s}
	}
	for p, pn := range phaseNames {
		if pn == prefix {
			return EventKey{Phase: p, Name: name}, nil
		}
	}
	return EventKey{}, &UnknownEventError{Key: s}
}

// registry holds one channel per wired event key. It is built once and never
// shrinks.
type registry map[EventKey]*broadcast.Channel[Event]

func newRegistry(t *table) registry {
	r := make(registry, 2*len(t.order)+2*len(t.states)+4)
	for _, name := range t.order {
		r.add(BeforeKey(name))
		r.add(AfterKey(name))
	}
	for _, s := range t.states {
		r.add(ExitKey(s))
		r.add(EnterKey(s))
	}
	for p := range phaseNames {
		r.add(EventKey{Phase: p, Name: AnyName})
	}
	return r
}

func (r registry) add(k EventKey) {
	if _, ok := r[k]; !ok {
		r[k] = broadcast.NewChannel[Event]()
	}
}

// sequence returns the keys fired for e, split around the state change.
func sequence(e Event) (pre, post [4]EventKey) {
	pre = [4]EventKey{
		BeforeKey(e.Transition),
		{Phase: PhaseBefore, Name: AnyName},
		ExitKey(e.From),
		{Phase: PhaseExit, Name: AnyName},
	}
	post = [4]EventKey{
		EnterKey(e.To),
		{Phase: PhaseEnter, Name: AnyName},
		AfterKey(e.Transition),
		{Phase: PhaseAfter, Name: AnyName},
	}
	return pre, post
}
