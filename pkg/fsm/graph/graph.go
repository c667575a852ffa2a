// Package graph renders the transition table of a state machine as a
// Mermaid state diagram or a Graphviz DOT digraph.
//
// Wildcard transitions are drawn as one edge from every known state.
package graph

import (
	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Describer is the read-only view of a machine needed to draw it.
// *fsm.Machine implements it.
type Describer interface {
	Name() string
	Initial() fsm.State
	States() []fsm.State
	Transitions() []fsm.TransitionSpec
}

// Edge is one drawn arrow.
type Edge struct {
	From  fsm.State
	To    fsm.State
	Label fsm.Transition
}

// Edges expands the transition table of d into drawable edges, in
// declaration order.
func Edges(d Describer) []Edge {
	states := d.States()
	var edges []Edge
	for _, spec := range d.Transitions() {
		sources := spec.From.States()
		if spec.From.IsAny() {
			sources = states
		}
		for _, from := range sources {
			edges = append(edges, Edge{From: from, To: spec.To, Label: spec.Name})
		}
	}
	return edges
}
