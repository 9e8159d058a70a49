package session

import "context"

// Store is the session-scoped key/value port backing attribution capture and
// the cross-page bridge. Keys live inside a session namespace and expire with
// the session; nothing written here survives the session lifetime.
type Store interface {
	// Get returns the value under key, with found=false when the key is
	// absent or the session has expired.
	Get(ctx context.Context, sessionID, key string) (value string, found bool, err error)

	// Set writes the value under key, overwriting any existing value.
	Set(ctx context.Context, sessionID, key, value string) error

	// SetIfAbsent writes the value only when no value exists under key and
	// reports whether the write happened.
	SetIfAbsent(ctx context.Context, sessionID, key, value string) (stored bool, err error)

	// GetDelete reads and removes the value under key in one operation, so a
	// second read in the same session cannot observe it again.
	GetDelete(ctx context.Context, sessionID, key string) (value string, found bool, err error)

	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close() error
}
