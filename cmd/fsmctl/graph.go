package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fsmkit/pkg/fsm/graph"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		format    string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Render the transition table as a Mermaid or DOT diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "mermaid":
				var opts []graph.MermaidOption
				if direction != "" {
					d, err := parseDirection(direction)
					if err != nil {
						return err
					}
					opts = append(opts, graph.WithDirection(d))
				}
				_, err = io.WriteString(out, graph.Mermaid(m, opts...))
			case "dot":
				_, err = io.WriteString(out, graph.DOT(m))
			default:
				return fmt.Errorf("unknown graph format %q: use mermaid or dot", format)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "mermaid", "output format: mermaid or dot")
	cmd.Flags().StringVar(&direction, "direction", "", "mermaid layout direction: TB, BT, LR or RL")
	return cmd
}

func parseDirection(s string) (graph.Direction, error) {
	switch s {
	case "TB":
		return graph.TopToBottom, nil
	case "BT":
		return graph.BottomToTop, nil
	case "LR":
		return graph.LeftToRight, nil
	case "RL":
		return graph.RightToLeft, nil
	}
	return 0, fmt.Errorf("unknown direction %q: use TB, BT, LR or RL", s)
}
