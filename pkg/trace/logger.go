package trace

// Logger is the interface applications implement to receive bus transaction
// events. Pass nil or NoopLogger to disable capture.
type Logger interface {
	// Log records a transaction event. Implementations must be
	// thread-safe and should not block; capture must never slow the bus.
	Log(event Event)
}

// NoopLogger discards all events. Use when capture is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
