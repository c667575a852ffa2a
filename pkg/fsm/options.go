package fsm

import "log/slog"

// Option configures a Machine during construction.
type Option func(*Machine)

// WithLogger sets the logger used for transition diagnostics.
// Nil loggers are ignored; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithID overrides the generated machine id. Empty ids are ignored.
func WithID(id string) Option {
	return func(m *Machine) {
		if id != "" {
			m.id = id
		}
	}
}
