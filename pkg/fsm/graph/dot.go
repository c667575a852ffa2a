package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// DOT renders d as a Graphviz digraph. The initial state is pointed to by an
// unlabeled point node.
func DOT(d Describer) string {
	var sb strings.Builder

	name := d.Name()
	fmt.Fprintf(&sb, "digraph %s {\n", strconv.Quote(name))
	sb.WriteString("\trankdir=\"LR\";\n")
	sb.WriteString("\tnode [shape=Mrecord];\n")

	for _, s := range d.States() {
		q := strconv.Quote(string(s))
		fmt.Fprintf(&sb, "\t%s [label=%s];\n", q, q)
	}
	for _, e := range Edges(d) {
		fmt.Fprintf(&sb, "\t%s -> %s [label=%s];\n",
			strconv.Quote(string(e.From)),
			strconv.Quote(string(e.To)),
			strconv.Quote(string(e.Label)),
		)
	}

	sb.WriteString("\t__init [label=\"\", shape=point];\n")
	fmt.Fprintf(&sb, "\t__init -> %s;\n", strconv.Quote(string(d.Initial())))
	sb.WriteString("}\n")
	return sb.String()
}
