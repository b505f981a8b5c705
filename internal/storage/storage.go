package storage

import "context"

// CartKey is the versioned storage key for the serialized cart. Bump the
// suffix whenever the persisted format changes.
const CartKey = "pharmacy_cart_v1"

// Store persists an opaque payload under a fixed key. The cart store owns
// the payload format; backends only move bytes.
type Store interface {
	// Load returns the stored payload, or domain.ErrNotFound when nothing
	// has been stored yet.
	Load(ctx context.Context) ([]byte, error)
	// Save durably replaces the payload. A Load immediately after a
	// successful Save must observe the new payload.
	Save(ctx context.Context, data []byte) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
