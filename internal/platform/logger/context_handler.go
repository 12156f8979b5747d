package logger

import (
	"context"
	"io"
	"log/slog"
)

// ContextHandler is a custom slog.Handler that adds static service metadata
// and request-scoped attributes found on the context to every log record.
type ContextHandler struct {
	// The underlying handler (usually JSON)
	handler slog.Handler
}

// NewContextHandler creates a ContextHandler writing JSON to out. The given
// attributes are attached to every record the handler emits.
func NewContextHandler(out io.Writer, opts *slog.HandlerOptions, metadata ...slog.Attr) *ContextHandler {
	var handlerOpts slog.HandlerOptions
	if opts != nil {
		// Clone the options to avoid modifying the caller's options
		handlerOpts = *opts
	}

	var handler slog.Handler = slog.NewJSONHandler(out, &handlerOpts)
	if len(metadata) > 0 {
		handler = handler.WithAttrs(metadata)
	}

	return &ContextHandler{handler: handler}
}

// Enabled implements the slog.Handler interface.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup implements the slog.Handler interface.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	attrs := attrsFromContext(ctx)
	if len(attrs) == 0 {
		return h.handler.Handle(ctx, record)
	}

	// Clone the record to avoid modifying the original
	enhanced := record.Clone()
	enhanced.AddAttrs(attrs...)

	return h.handler.Handle(ctx, enhanced)
}
