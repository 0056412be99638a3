package ledger

import (
	"context"
	"time"
)

// Store defines the key-value commands the instrumentation layer is built on.
// Each method maps to a single atomic command on the backing store.
// Compositions of commands issued by this package are not transactional.
type Store interface {
	// Set writes value under key with no expiration.
	Set(ctx context.Context, key string, value any) error

	// Get reads the raw bytes stored under key.
	// Returns the bytes and true if found, nil and false otherwise.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Incr increments the integer counter under key and returns the new value.
	// A missing key counts as 0 before the increment.
	Incr(ctx context.Context, key string) (int64, error)

	// RPush appends values to the tail of the list under key.
	RPush(ctx context.Context, key string, values ...string) error

	// LRange returns list elements between start and stop inclusive.
	// Negative indexes count from the tail, so 0 and -1 return the whole list.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// SetEX writes value under key with an expiration of ttl.
	SetEX(ctx context.Context, key string, value string, ttl time.Duration) error

	// FlushDB removes every key in the current database.
	FlushDB(ctx context.Context) error
}

// readCounter returns the integer stored under key, or 0 if the key is missing.
func readCounter(ctx context.Context, s Store, key string) (int64, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	return parseInt(raw)
}
