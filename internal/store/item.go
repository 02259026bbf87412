package store

// ItemState tells how a stored slot was found.
type ItemState int

const (
	// ItemAbsent means nothing is stored, or the medium could not be read.
	ItemAbsent ItemState = iota
	// ItemDecrypted means the slot decrypted and authenticated successfully.
	ItemDecrypted
	// ItemCorrupted means something is stored but it is not valid ciphertext
	// for the current key.
	ItemCorrupted
)

func (s ItemState) String() string {
	switch s {
	case ItemDecrypted:
		return "decrypted"
	case ItemCorrupted:
		return "corrupted"
	default:
		return "absent"
	}
}

// Item is the result of reading one slot of [SecureStorage].
type Item struct {
	State ItemState
	// Value is the decrypted plaintext. Set only for ItemDecrypted.
	Value string
	// Raw is the stored text exactly as the medium returned it. Set for
	// ItemDecrypted and ItemCorrupted.
	Raw string
}

// Present reports whether the item decrypted successfully.
func (i Item) Present() bool {
	return i.State == ItemDecrypted
}

// Fallback returns the plaintext, or for a corrupted item the raw stored
// text treated as plaintext. Only callers that explicitly accept
// unauthenticated data should use it.
func (i Item) Fallback() (string, bool) {
	switch i.State {
	case ItemDecrypted:
		return i.Value, true
	case ItemCorrupted:
		return i.Raw, true
	default:
		return "", false
	}
}
