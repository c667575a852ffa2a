package eventsink

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

// LogSink writes records to a slog.Logger.
type LogSink struct {
	log   *slog.Logger
	level slog.Level
}

// NewLogSink returns a sink logging at Info level. A nil logger discards.
func NewLogSink(log *slog.Logger) *LogSink {
	return NewLogSinkLevel(log, slog.LevelInfo)
}

// NewLogSinkLevel returns a sink logging at the given level.
func NewLogSinkLevel(log *slog.Logger, level slog.Level) *LogSink {
	if log == nil {
		log = logger.Discard()
	}
	return &LogSink{log: log, level: level}
}

// Write implements Sink. It never fails.
func (s *LogSink) Write(ctx context.Context, r Record) error {
	attrs := []slog.Attr{
		logger.Component("eventsink"),
		logger.MachineID(r.MachineID),
		logger.Transition(r.Transition),
		logger.FromState(r.From),
		logger.ToState(r.To),
	}
	if r.Machine != "" {
		attrs = append(attrs, logger.Machine(r.Machine))
	}
	if r.Data != nil {
		attrs = append(attrs, slog.Any("data", r.Data))
	}
	s.log.LogAttrs(ctx, s.level, "transition completed", attrs...)
	return nil
}
