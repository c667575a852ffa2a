package fsm

import "slices"

// Builder provides a fluent API for assembling a Config.
//
//	m, err := fsm.NewBuilder("green").
//		Transition("warn", fsm.FromStates("green"), "yellow").
//		Transition("clear", fsm.FromAny(), "green").
//		Build()
type Builder struct {
	cfg Config
}

// NewBuilder starts a configuration with the given initial state.
func NewBuilder(initial State) *Builder {
	return &Builder{cfg: Config{Initial: initial}}
}

// Name sets the display name of the machine.
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Transition appends a transition declaration.
func (b *Builder) Transition(name Transition, from From, to State) *Builder {
	b.cfg.Transitions = append(b.cfg.Transitions, TransitionSpec{Name: name, From: from, To: to})
	return b
}

// Config returns a copy of the configuration assembled so far.
func (b *Builder) Config() Config {
	cfg := b.cfg
	cfg.Transitions = slices.Clone(b.cfg.Transitions)
	return cfg
}

// Build validates the configuration and creates the machine.
func (b *Builder) Build(opts ...Option) (*Machine, error) {
	return New(b.Config(), opts...)
}
