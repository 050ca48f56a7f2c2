package trace

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want to watch bus traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("op", event.Op.String()),
		slog.String("direction", event.Direction.String()),
		slog.String("addr", Addr(event.Addr)),
	}

	if event.Register != nil {
		attrs = append(attrs, slog.String("register", Addr(*event.Register)))
	}
	if len(event.Data) > 0 {
		attrs = append(attrs, slog.String("data", Hex(event.Data)))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	level := slog.LevelDebug
	if event.Error != "" {
		level = slog.LevelWarn
	}

	a.logger.LogAttrs(context.Background(), level, "bus", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
