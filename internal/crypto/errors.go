package crypto

import "errors"

var (
	// ErrInvalidKey is returned when a cipher is built from a key of the wrong size.
	ErrInvalidKey = errors.New("invalid cipher key")

	// ErrEmptyPassphrase is returned when no passphrase is configured.
	ErrEmptyPassphrase = errors.New("empty encryption passphrase")

	// ErrDecrypt is the umbrella error for every ciphertext that cannot be opened.
	ErrDecrypt = errors.New("decryption failed")
)
