package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Medium is the physical key-value backend behind [SecureStorage]. It only
// ever sees ciphertext and, with the debug mirror enabled, plaintext mirrors.
type Medium interface {
	// Get returns the stored value or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Keys lists every key held by the medium.
	Keys(ctx context.Context) ([]string, error)
	// Close releases the underlying connection.
	Close() error
}
