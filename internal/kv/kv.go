// Package kv provides the string-keyed snapshot store backing workout
// history, the week cursor and the XP counter. Values are whole JSON
// snapshots read and written in one piece; there is no partial update and no
// cross-writer atomicity — single-user, last writer wins.
package kv

import "context"

// Store is a string-keyed get/set/remove store.
type Store interface {
	// Get returns the value for key. The second result is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the whole value for key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
