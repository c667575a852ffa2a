package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Direction is the layout direction of a Mermaid diagram.
type Direction int

const (
	TopToBottom Direction = iota
	BottomToTop
	LeftToRight
	RightToLeft
)

func (d Direction) code() string {
	switch d {
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// MermaidOption configures Mermaid output.
type MermaidOption func(*mermaidConfig)

type mermaidConfig struct {
	direction *Direction
}

// WithDirection adds a direction statement to the diagram.
func WithDirection(d Direction) MermaidOption {
	return func(c *mermaidConfig) { c.direction = &d }
}

// Mermaid renders d as a stateDiagram-v2.
func Mermaid(d Describer, opts ...MermaidOption) string {
	cfg := &mermaidConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ids := mermaidIDs(d.States())

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	if cfg.direction != nil {
		fmt.Fprintf(&sb, "\tdirection %s\n", cfg.direction.code())
	}
	for _, s := range d.States() {
		if id := ids[s]; id != string(s) {
			fmt.Fprintf(&sb, "\t%s : %s\n", id, s)
		}
	}
	fmt.Fprintf(&sb, "\t[*] --> %s\n", ids[d.Initial()])
	for _, e := range Edges(d) {
		fmt.Fprintf(&sb, "\t%s --> %s : %s\n", ids[e.From], ids[e.To], e.Label)
	}
	return sb.String()
}

// mermaidIDs maps states to identifiers Mermaid accepts, keeping them unique.
func mermaidIDs(states []fsm.State) map[fsm.State]string {
	ids := make(map[fsm.State]string, len(states))
	used := make(map[string]bool, len(states))
	for _, s := range states {
		if sanitize(string(s)) == string(s) {
			used[string(s)] = true
		}
	}
	for _, s := range states {
		id := sanitize(string(s))
		if id != string(s) {
			base := id
			for n := 1; used[id] || id == ""; n++ {
				id = fmt.Sprintf("%s_%d", base, n)
			}
		}
		used[id] = true
		ids[s] = id
	}
	return ids
}

func sanitize(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
