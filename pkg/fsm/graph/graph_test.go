package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
	"github.com/dmitrymomot/fsmkit/pkg/fsm/graph"
)

func newDoor(t *testing.T) *fsm.Machine {
	t.Helper()
	m, err := fsm.New(fsm.Config{
		Name:    "door",
		Initial: "closed",
		Transitions: []fsm.TransitionSpec{
			{Name: "open", From: fsm.FromStates("closed"), To: "opened"},
			{Name: "close", From: fsm.FromStates("opened"), To: "closed"},
			{Name: "break", From: fsm.FromAny(), To: "out of order"},
		},
	})
	require.NoError(t, err)
	return m
}

func TestEdges(t *testing.T) {
	t.Parallel()

	edges := graph.Edges(newDoor(t))
	assert.Equal(t, []graph.Edge{
		{From: "closed", To: "opened", Label: "open"},
		{From: "opened", To: "closed", Label: "close"},
		{From: "closed", To: "out of order", Label: "break"},
		{From: "opened", To: "out of order", Label: "break"},
		{From: "out of order", To: "out of order", Label: "break"},
	}, edges)
}

func TestMermaid(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		want := strings.Join([]string{
			"stateDiagram-v2",
			"\toutoforder : out of order",
			"\t[*] --> closed",
			"\tclosed --> opened : open",
			"\topened --> closed : close",
			"\tclosed --> outoforder : break",
			"\topened --> outoforder : break",
			"\toutoforder --> outoforder : break",
			"",
		}, "\n")
		assert.Equal(t, want, graph.Mermaid(newDoor(t)))
	})

	t.Run("direction", func(t *testing.T) {
		t.Parallel()

		out := graph.Mermaid(newDoor(t), graph.WithDirection(graph.LeftToRight))
		assert.True(t, strings.HasPrefix(out, "stateDiagram-v2\n\tdirection LR\n"))
	})

	t.Run("sanitized names stay unique", func(t *testing.T) {
		t.Parallel()

		m, err := fsm.New(fsm.Config{
			Initial: "a-b",
			Transitions: []fsm.TransitionSpec{
				{Name: "go", From: fsm.FromStates("a-b"), To: "ab"},
			},
		})
		require.NoError(t, err)

		out := graph.Mermaid(m)
		assert.Contains(t, out, "\tab_1 : a-b\n")
		assert.Contains(t, out, "\t[*] --> ab_1\n")
		assert.Contains(t, out, "\tab_1 --> ab : go\n")
	})
}

func TestDOT(t *testing.T) {
	t.Parallel()

	out := graph.DOT(newDoor(t))

	assert.True(t, strings.HasPrefix(out, "digraph \"door\" {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "\t\"out of order\" [label=\"out of order\"];\n")
	assert.Contains(t, out, "\t\"closed\" -> \"opened\" [label=\"open\"];\n")
	assert.Contains(t, out, "\t\"opened\" -> \"out of order\" [label=\"break\"];\n")
	assert.Contains(t, out, "\t__init -> \"closed\";\n")
	assert.Equal(t, 6, strings.Count(out, " -> "))
}
