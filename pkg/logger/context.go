package logger

import (
	"context"
	"log/slog"
)

// contextExtractor pulls one attribute out of a record's context.
type contextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler adds context-scoped attributes to every record handled
// through one of the *Context logging methods.
type contextHandler struct {
	next       slog.Handler
	extractors []contextExtractor
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle evaluates extractors per record; values are never cached.
func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
// An empty name or a nil key is ignored.
//
//	type runIDKey struct{}
//	log := logger.New(logger.WithContextValue("run_id", runIDKey{}))
//	log.InfoContext(context.WithValue(ctx, runIDKey{}, id), "started")
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			v := ctx.Value(key)
			if v == nil {
				return slog.Attr{}, false
			}
			return slog.Any(name, v), true
		})
	}
}
