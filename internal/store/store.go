// Package store models the persisted key-value namespace behind an explicit
// interface. Every collection lives under one key as a JSON blob; writers use
// versioned compare-and-swap so an interleaved read-modify-write fails with
// ErrConflict instead of silently dropping the other writer's update.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when the key has no value.
	ErrNotFound = errors.New("store: key not found")
	// ErrConflict is returned when a CompareAndSwap loses to a concurrent write.
	ErrConflict = errors.New("store: version conflict")
)

// KV is the persistence contract. Version starts at 1 on first write and
// increments on every successful write; passing version 0 to CompareAndSwap
// means "create only if absent".
type KV interface {
	// Get returns the current value and its version, or ErrNotFound.
	Get(ctx context.Context, key string) (value []byte, version int64, err error)
	// Put writes unconditionally (last writer wins). Used for bootstrap/seed
	// paths only; collection mutations go through CompareAndSwap.
	Put(ctx context.Context, key string, value []byte) error
	// CompareAndSwap writes value only if the stored version still equals
	// version. Returns ErrConflict otherwise.
	CompareAndSwap(ctx context.Context, key string, value []byte, version int64) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Ping validates backend connectivity for health checks.
	Ping(ctx context.Context) error
}
