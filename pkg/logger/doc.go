// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent across the
// state machine, its event sinks and the fsmctl command.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler, applies static
// attributes, and, when WithContextValue is used, adds values carried by the
// context of each *Context logging call.
//
//	log := logger.New(
//	    logger.WithDevelopment("fsmctl"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("transition fired",
//	    logger.Transition("warn"),
//	    logger.FromState("green"),
//	    logger.ToState("yellow"),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally:
//
//	log.Info("done", logger.Error(err))
//
// Discard returns a logger that drops everything; it is the default logger of
// a state machine.
package logger
