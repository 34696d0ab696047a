package kv

import "context"

// Store describes the key/value operations the services rely on.
type Store interface {
	// Get returns the value for key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error

	// List returns every key with its value.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// BatchSetter is implemented by stores that can write several keys at once,
// all or nothing.
type BatchSetter interface {
	SetMany(ctx context.Context, items map[string][]byte) error
}
