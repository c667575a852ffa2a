// Command fsmctl loads a state machine definition file, fires transitions
// against it, and renders its transition table.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fsmctl: %v\n", err)
		stop()
		os.Exit(1)
	}
}
