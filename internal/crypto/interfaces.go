// Package crypto implements the symmetric cipher that protects the console's
// local session store.
//
// A single [Cipher] is built once at startup from the configured passphrase
// and shared by every storage operation for the lifetime of the process.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts small string payloads.
//
// Implementations must be authenticated (tampering is detected on Decrypt)
// and must generate a fresh nonce per call, so encrypting the same plaintext
// twice yields different ciphertexts.
type Cipher interface {
	// Encrypt seals plaintext and returns a printable, versioned ciphertext
	// suitable for a string key-value medium.
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt. It returns an error
	// wrapping [ErrDecrypt] when the input is malformed, was sealed with a
	// different key, or has been modified.
	Decrypt(ciphertext string) ([]byte, error)
}
