// Package filesystem abstracts read-only access to the local CSV source
// directory.
//
// Two implementations are provided:
//   - OSFileSystem: backed by the real filesystem
//   - MemoryFileSystem: map-backed, for tests
package filesystem
