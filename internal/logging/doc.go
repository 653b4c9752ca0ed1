// Package logging provides concrete implementations of the ridewise.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes progress lines to stdout and diagnostics to stderr
//   - NullLogger: Discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
