package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func newTestCipher(t *testing.T, fill byte) Cipher {
	t.Helper()
	c, err := NewAESGCMCipher(bytes.Repeat([]byte{fill}, 32))
	if err != nil {
		t.Fatalf("NewAESGCMCipher error: %v", err)
	}
	return c
}

func TestDeriveKey_DeterministicAndLength(t *testing.T) {
	k1 := DeriveKey("correct horse battery staple")
	k2 := DeriveKey("correct horse battery staple")

	if len(k1) != 32 {
		t.Fatalf("key length = %d, want 32", len(k1))
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to match for the same passphrase")
	}
}

func TestDeriveKey_DifferentPassphrases(t *testing.T) {
	if bytes.Equal(DeriveKey("one"), DeriveKey("two")) {
		t.Fatalf("expected different keys for different passphrases")
	}
}

func TestNewStorageCipher_EmptyPassphrase(t *testing.T) {
	_, err := NewStorageCipher("   ")
	if !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("expected ErrEmptyPassphrase, got %v", err)
	}
}

func TestNewAESGCMCipher_InvalidKeyLength(t *testing.T) {
	for _, n := range []int{0, 16, 31, 33} {
		_, err := NewAESGCMCipher(make([]byte, n))
		if !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("len %d: expected ErrInvalidKey, got %v", n, err)
		}
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := newTestCipher(t, 0x2A)

	for _, plain := range []string{"", "a", `{"tokens":{"access":{"token":"t1"}}}`, strings.Repeat("x", 4096)} {
		ct, err := c.Encrypt([]byte(plain))
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if !strings.HasPrefix(ct, cipherPrefixV1) {
			t.Fatalf("ciphertext %q lacks version prefix", ct)
		}

		got, err := c.Decrypt(ct)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if string(got) != plain {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plain)
		}
	}
}

func TestEncrypt_NonceRandomness(t *testing.T) {
	c := newTestCipher(t, 0x2A)

	ct1, err := c.Encrypt([]byte("same"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	ct2, err := c.Encrypt([]byte("same"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if ct1 == ct2 {
		t.Fatalf("expected different ciphertexts for identical plaintexts")
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	ct, err := newTestCipher(t, 0x01).Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = newTestCipher(t, 0x02).Decrypt(ct)
	if !errors.Is(err, ErrDecrypt) {
		t.Fatalf("expected ErrDecrypt, got %v", err)
	}
}

func TestDecrypt_Malformed(t *testing.T) {
	c := newTestCipher(t, 0x2A)

	valid, err := c.Encrypt([]byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	blob, _ := base64.StdEncoding.DecodeString(valid[len(cipherPrefixV1):])
	blob[len(blob)-1] ^= 0xFF
	tampered := cipherPrefixV1 + base64.StdEncoding.EncodeToString(blob)

	cases := map[string]string{
		"no prefix":   "plain text",
		"bad base64":  cipherPrefixV1 + "%%%",
		"too short":   cipherPrefixV1 + base64.StdEncoding.EncodeToString([]byte("short")),
		"tampered":    tampered,
		"empty":       "",
		"random junk": "v1:" + base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x7F}, 64)),
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := c.Decrypt(in); !errors.Is(err, ErrDecrypt) {
				t.Fatalf("expected ErrDecrypt, got %v", err)
			}
		})
	}
}
