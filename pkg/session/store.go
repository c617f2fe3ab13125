package session

import "context"

// Store persists raw session payloads (JSON objects) keyed by session id.
//
// Implementations must return ErrSessionNotFound from Load when no entry
// exists, and Delete must succeed for ids that have no entry.
type Store interface {
	// Exists reports whether an entry for id is present.
	Exists(ctx context.Context, id string) (bool, error)

	// Load returns the stored payload for id.
	Load(ctx context.Context, id string) ([]byte, error)

	// Save replaces the payload for id.
	Save(ctx context.Context, id string, data []byte) error

	// Delete removes the entry for id.
	Delete(ctx context.Context, id string) error

	// Path returns a human-readable locator of the entry for id.
	Path(id string) string
}
