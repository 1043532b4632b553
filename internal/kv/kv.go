// Package kv defines the string key-value store the runner persists its
// username and high scores in, plus small in-process implementations.
package kv

import "context"

// KeyUsername holds the name of the logged-in player.
const KeyUsername = "USERNAME"

// Store is an asynchronous-friendly string key-value store. Every call may
// block on I/O and honors ctx.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// GetOr reads key and returns def when the key is missing or the read
// fails. Read failures are treated as "no saved value".
func GetOr(ctx context.Context, s Store, key, def string) string {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	return v
}
