package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAllowedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "allowed <file>",
		Short: "List the transitions allowed from the initial state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.machine(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range m.AllowedTransitions() {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}
}
