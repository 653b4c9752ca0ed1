// Package storage abstracts the object storage boundary: put a file's
// bytes under a key, list keys under a prefix, fetch an object's bytes.
//
// S3Store talks to S3 (or an S3-compatible endpoint) through the
// aws-sdk-go-v2 client. MemoryStore is a map-backed implementation for
// tests.
package storage
