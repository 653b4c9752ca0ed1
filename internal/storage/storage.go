package storage

import "context"

// Object describes a stored object's key and size.
type Object struct {
	Key  string
	Size int64
}

// ObjectStore is the minimal object storage surface the ETL stages use:
// full-overwrite put, prefix listing and buffered get. Implementations
// must be safe for sequential reuse across files within one run.
type ObjectStore interface {
	// Put stores body under key, overwriting any existing object.
	Put(ctx context.Context, key string, body []byte) error

	// List returns all objects whose keys start with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Object, error)

	// Get fetches the full content of the object at key.
	Get(ctx context.Context, key string) ([]byte, error)
}
