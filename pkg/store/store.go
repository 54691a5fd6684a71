// Package store persists the journal's three aggregates (user, post feed,
// stats) through a textual key-value store. The store itself holds opaque
// string values addressed by fixed record keys; the codec layered on top
// knows the record schemas and the defaults to fall back to when a record is
// missing or corrupt.
package store

import "errors"

// ErrWrite is the class of persistence write failures (disk full, permission
// denied, rename race). Loads never produce it; saves propagate it wrapped
// so callers can surface the failure instead of silently dropping data.
var ErrWrite = errors.New("store: write failed")

// Store is a textual key-value store. Values are opaque strings; a Set is
// durable once it returns.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool)

	// Set overwrites the value for key and flushes the store.
	Set(key, value string) error
}
