// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	// cipherPrefixV1 versions the ciphertext format so the algorithm can be
	// changed later without guessing what an entry contains.
	cipherPrefixV1 = "v1:"

	keySize = 32 // AES-256
)

// storageSalt is fixed: the derived key must be identical across restarts or
// previously written entries become unreadable.
var storageSalt = []byte("stream-console/local-storage/v1")

// Argon2id tuning, the same OWASP profile the vault client used for its KEK.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
)

// aesGCMCipher is the AES-256-GCM implementation of [Cipher].
type aesGCMCipher struct {
	aead cipher.AEAD
}

// DeriveKey stretches passphrase into a 256-bit key with Argon2id and the
// fixed storage salt. The result is deterministic for a given passphrase.
func DeriveKey(passphrase string) []byte {
	return argon2.IDKey([]byte(passphrase), storageSalt, argonTime, argonMemory, argonThreads, keySize)
}

// NewStorageCipher derives the storage key from passphrase and returns the
// process-wide [Cipher]. It is meant to be called once at startup.
func NewStorageCipher(passphrase string) (Cipher, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrEmptyPassphrase
	}
	return NewAESGCMCipher(DeriveKey(passphrase))
}

// NewAESGCMCipher builds a [Cipher] from a raw 32-byte key. The key is copied.
func NewAESGCMCipher(key []byte) (Cipher, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: aes-gcm key must be %d bytes, got %d", ErrInvalidKey, keySize, len(key))
	}

	block, err := aes.NewCipher(append([]byte(nil), key...))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesGCMCipher{aead: gcm}, nil
}

// Encrypt implements [Cipher]. Output: "v1:" + base64(nonce ‖ ciphertext).
func (c *aesGCMCipher) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, plaintext, nil)
	blob := make([]byte, 0, len(nonce)+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return cipherPrefixV1 + base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher].
func (c *aesGCMCipher) Decrypt(ciphertext string) ([]byte, error) {
	if !strings.HasPrefix(ciphertext, cipherPrefixV1) {
		return nil, fmt.Errorf("%w: unknown ciphertext version (prefix: %q)", ErrDecrypt, prefixOf(ciphertext))
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext[len(cipherPrefixV1):])
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", ErrDecrypt, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return plaintext, nil
}

func prefixOf(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
