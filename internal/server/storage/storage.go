// Package storage provides access to the object store backing the
// moderation workflow. Buckets are passed explicitly on every call because
// the service works against two of them (pending and final).
package storage

import "context"

// ObjectStore is the minimal object-store surface the service needs.
//
// Implementations must return an error wrapping common.ErrorNotFound from
// Get when the object does not exist, so callers can tell a genuinely
// absent object from a storage failure with errors.Is.
type ObjectStore interface {
	// Put writes body under key, overwriting any existing object.
	Put(ctx context.Context, bucket, key string, body []byte) error

	// Get returns the raw object body.
	Get(ctx context.Context, bucket, key string) ([]byte, error)

	// List returns the keys of every object in the bucket. Order follows
	// bucket enumeration order and is not guaranteed stable.
	List(ctx context.Context, bucket string) ([]string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, bucket, key string) error
}
