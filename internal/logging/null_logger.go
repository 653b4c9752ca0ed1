package logging

// NullLogger discards all log messages. Used by tests that assert on
// behavior rather than output.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger { return &NullLogger{} }

// Verbose is a no-op.
func (*NullLogger) Verbose(format string, args ...interface{}) {}

// Info is a no-op.
func (*NullLogger) Info(format string, args ...interface{}) {}

// Error is a no-op.
func (*NullLogger) Error(format string, args ...interface{}) {}
